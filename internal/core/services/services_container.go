package services

import (
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	clock := WithClock(cfg.Now)

	container := &portssvc.ServiceContainer{}

	// The ledger service owns balance recomputation; transaction writes call into it.
	container.Ledger = NewLedgerService(repos.SafeRepo, repos.TransactionRepo, clock)
	container.Transaction = NewTransactionService(
		repos.SafeRepo,
		repos.TransactionRepo,
		repos.CategoryRepo,
		repos.ContactRepo,
		container.Ledger,
		clock,
	)
	container.Safe = NewSafeService(repos.SafeRepo, repos.TransactionRepo, clock)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.TransactionRepo, clock)
	container.AccessGrant = NewAccessGrantService(repos.AccessGrantRepo, repos.UserRepo, repos.SafeRepo, clock)
	container.User = NewUserService(repos.UserRepo, clock)
	container.Contact = NewContactService(repos.ContactRepo)
	container.TokenService = NewTokenService(cfg)

	return container
}
