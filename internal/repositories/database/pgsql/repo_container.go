package pgsql

import (
	portsrepo "github.com/explainmymoney/emm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles the concrete repositories built over one pool.
type RepositoryProvider struct {
	TransactionRepo portsrepo.TransactionRepositoryFacade
	UserRepo        portsrepo.UserRepositoryFacade
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) RepositoryProvider {
	return RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
