package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

// accountantClientRepository stores grants with secondary indexes by
// accountant and by client. Index slices keep first-grant order.
type accountantClientRepository struct {
	mu           sync.RWMutex
	grants       map[string]domain.AccountantClient
	order        []string
	byKey        map[domain.GrantKey]string
	byAccountant map[string][]string
	byClient     map[string][]string
}

func newAccountantClientRepository() *accountantClientRepository {
	return &accountantClientRepository{
		grants:       make(map[string]domain.AccountantClient),
		byKey:        make(map[domain.GrantKey]string),
		byAccountant: make(map[string][]string),
		byClient:     make(map[string][]string),
	}
}

var _ portsrepo.AccountantClientRepositoryFacade = (*accountantClientRepository)(nil)

func keyOf(g domain.AccountantClient) domain.GrantKey {
	return domain.GrantKey{AccountantID: g.AccountantID, ClientID: g.ClientID, BusinessID: g.BusinessID}
}

func (r *accountantClientRepository) collect(ids []string, keep func(domain.AccountantClient) bool) []domain.AccountantClient {
	out := make([]domain.AccountantClient, 0, len(ids))
	for _, id := range ids {
		g := r.grants[id]
		if keep == nil || keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func (r *accountantClientRepository) ListGrantsByAccountant(_ context.Context, accountantID string) ([]domain.AccountantClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.byAccountant[accountantID], nil), nil
}

func (r *accountantClientRepository) ListGrantsByClient(_ context.Context, clientID string) ([]domain.AccountantClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.byClient[clientID], nil), nil
}

func (r *accountantClientRepository) ListGrantsByBusiness(_ context.Context, businessID string) ([]domain.AccountantClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.order, func(g domain.AccountantClient) bool { return g.BusinessID == businessID }), nil
}

func (r *accountantClientRepository) FindGrant(_ context.Context, accountantID, businessID string) (*domain.AccountantClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.byAccountant[accountantID] {
		g := r.grants[id]
		if g.BusinessID == businessID && g.HasAccess {
			return &g, nil
		}
	}
	return nil, apperrors.NewNotFoundError("grant", accountantID+"/"+businessID)
}

func (r *accountantClientRepository) AssignAccountantToClient(_ context.Context, grant domain.AccountantClient) (*domain.AccountantClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(grant)
	if id, ok := r.byKey[key]; ok {
		existing := r.grants[id]
		if !existing.HasAccess {
			existing.HasAccess = true
			if grant.UpdatedAt.After(existing.UpdatedAt) {
				existing.UpdatedAt = grant.UpdatedAt
			}
			r.grants[id] = existing
		}
		return &existing, nil
	}

	if _, exists := r.grants[grant.ID]; exists {
		return nil, apperrors.NewDuplicateError("grant " + grant.ID + " already exists")
	}
	grant.HasAccess = true
	r.grants[grant.ID] = grant
	r.order = append(r.order, grant.ID)
	r.byKey[key] = grant.ID
	r.byAccountant[grant.AccountantID] = append(r.byAccountant[grant.AccountantID], grant.ID)
	r.byClient[grant.ClientID] = append(r.byClient[grant.ClientID], grant.ID)
	return &grant, nil
}

func (r *accountantClientRepository) RevokeAccountantAccess(_ context.Context, key domain.GrantKey, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := 0
	for _, id := range r.byAccountant[key.AccountantID] {
		g := r.grants[id]
		if g.ClientID != key.ClientID || g.BusinessID != key.BusinessID {
			continue
		}
		matched++
		if g.HasAccess {
			g.HasAccess = false
			if now.After(g.UpdatedAt) {
				g.UpdatedAt = now
			}
			r.grants[id] = g
		}
	}
	if matched == 0 {
		return 0, apperrors.NewNotFoundError("grant", key.AccountantID+"/"+key.ClientID+"/"+key.BusinessID)
	}
	return matched, nil
}
