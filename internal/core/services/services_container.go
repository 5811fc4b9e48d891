package services

import (
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Extra options (e.g. WithClock) are applied to every service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The activity log is needed by everything else; its authorizer is set once the resolver exists.
	activity := &activityService{activityRepo: repos.ActivityLogRepo}
	activity.apply(opts)
	recorder := WithActivityRecorder(activity)

	// Initialize the relationship resolver first since it authorizes every business-scoped call
	container.Accountant = NewAccountantService(
		repos.UserRepo,
		repos.BusinessRepo,
		repos.AccountantClientRepo,
		repos.ClientInvitationRepo,
		cfg.InvitationTTL,
		append([]ServiceOption{recorder}, opts...)...,
	)
	activity.BusinessAuthorizer = container.Accountant
	container.Activity = activity

	scoped := append([]ServiceOption{recorder, WithBusinessAuthorizer(container.Accountant)}, opts...)

	container.User = NewUserService(repos.UserRepo, scoped...)
	container.Token = NewTokenService(cfg)
	container.Business = NewBusinessService(repos.BusinessRepo, repos.UserRepo, scoped...)
	container.Document = NewDocumentService(repos.DocumentRepo, scoped...)
	container.Transaction = NewTransactionService(repos.TransactionRepo, scoped...)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, scoped...)
	container.VatReturn = NewVatReturnService(repos.VatReturnRepo, scoped...)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, repos.VatReturnRepo, scoped...)

	return container
}
