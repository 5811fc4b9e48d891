package dto

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type CreateBusinessRequest struct {
	CompanyName   string              `json:"companyName" binding:"required"`
	CompanyNumber *string             `json:"companyNumber"`
	UTR           *string             `json:"utr"`
	VATNumber     *string             `json:"vatNumber"`
	VATScheme     *domain.VATScheme   `json:"vatScheme" binding:"omitempty,oneof=standard flat_rate cash_accounting not_registered"`
	BusinessType  domain.BusinessType `json:"businessType" binding:"required,oneof=sole_trader partnership limited_company"`
	Industry      *string             `json:"industry"`
	Address       *string             `json:"address"`
	City          *string             `json:"city"`
	Postcode      *string             `json:"postcode"`
	IsPrimary     bool                `json:"isPrimary"`
}

type UpdateBusinessRequest struct {
	CompanyName   *string              `json:"companyName" binding:"omitempty,min=1"`
	CompanyNumber *string              `json:"companyNumber"`
	UTR           *string              `json:"utr"`
	VATNumber     *string              `json:"vatNumber"`
	VATScheme     *domain.VATScheme    `json:"vatScheme" binding:"omitempty,oneof=standard flat_rate cash_accounting not_registered"`
	BusinessType  *domain.BusinessType `json:"businessType" binding:"omitempty,oneof=sole_trader partnership limited_company"`
	Industry      *string              `json:"industry"`
	Address       *string              `json:"address"`
	City          *string              `json:"city"`
	Postcode      *string              `json:"postcode"`
	IsActive      *bool                `json:"isActive"`
	IsPrimary     *bool                `json:"isPrimary"`
	Version       *int                 `json:"version"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateBusinessRequest) ToPatch() domain.BusinessPatch {
	return domain.BusinessPatch{
		CompanyName:     r.CompanyName,
		CompanyNumber:   r.CompanyNumber,
		UTR:             r.UTR,
		VATNumber:       r.VATNumber,
		VATScheme:       r.VATScheme,
		BusinessType:    r.BusinessType,
		Industry:        r.Industry,
		Address:         r.Address,
		City:            r.City,
		Postcode:        r.Postcode,
		IsActive:        r.IsActive,
		IsPrimary:       r.IsPrimary,
		ExpectedVersion: r.Version,
	}
}

type BusinessResponse struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"ownerId"`
	CompanyName   string              `json:"companyName"`
	CompanyNumber *string             `json:"companyNumber,omitempty"`
	UTR           *string             `json:"utr,omitempty"`
	VATNumber     *string             `json:"vatNumber,omitempty"`
	VATScheme     *domain.VATScheme   `json:"vatScheme,omitempty"`
	BusinessType  domain.BusinessType `json:"businessType"`
	Industry      *string             `json:"industry,omitempty"`
	Address       *string             `json:"address,omitempty"`
	City          *string             `json:"city,omitempty"`
	Postcode      *string             `json:"postcode,omitempty"`
	IsActive      bool                `json:"isActive"`
	IsPrimary     bool                `json:"isPrimary"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Version       int                 `json:"version"`
}

func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		CompanyName:   b.CompanyName,
		CompanyNumber: b.CompanyNumber,
		UTR:           b.UTR,
		VATNumber:     b.VATNumber,
		VATScheme:     b.VATScheme,
		BusinessType:  b.BusinessType,
		Industry:      b.Industry,
		Address:       b.Address,
		City:          b.City,
		Postcode:      b.Postcode,
		IsActive:      b.IsActive,
		IsPrimary:     b.IsPrimary,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Version:       b.Version,
	}
}

func ToBusinessResponses(businesses []domain.Business) []BusinessResponse {
	out := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		out[i] = ToBusinessResponse(&businesses[i])
	}
	return out
}
