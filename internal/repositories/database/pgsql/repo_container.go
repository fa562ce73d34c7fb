package pgsql

import (
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		AccountRepo:      newPgxBankAccountRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		RecurringRepo:    newPgxRecurringBillRepository(dbPool),
		LeadRepo:         newPgxLeadRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
		ServiceTokenRepo: newPgxServiceTokenRepository(dbPool),
	}
}
