package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RuleRepo:       newPgxRuleRepository(dbPool),
		RosterRepo:     newPgxRosterRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		CashOutRepo:    newPgxCashOutRepository(dbPool),
		PoolRepo:       newPgxPoolRepository(dbPool),
	}
}
