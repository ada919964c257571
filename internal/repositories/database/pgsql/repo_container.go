package pgsql

import (
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SafeRepo:        newPgxSafeRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		AccessGrantRepo: newPgxAccessGrantRepository(dbPool),
		ContactRepo:     newPgxContactRepository(dbPool),
	}
}
