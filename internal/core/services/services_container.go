package services

import (
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gateway portssvc.AIGatewayClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Organization service first since the other services depend on its authorizer
	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	authorizer := container.Organization.(portssvc.OrganizationAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithAccountOrganizationAuthorizer(authorizer),
	)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithTransactionOrganizationAuthorizer(authorizer),
		WithTransactionAccountRepository(repos.AccountRepo),
	)

	container.Recurring = NewRecurringService(
		repos.RecurringRepo,
		repos.TransactionRepo,
		WithRecurringOrganizationAuthorizer(authorizer),
	)

	container.Lead = NewLeadService(
		repos.LeadRepo,
		WithLeadOrganizationAuthorizer(authorizer),
	)

	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		WithReportingOrganizationAuthorizer(authorizer),
	)

	container.Assistant = NewAssistantService(
		gateway,
		container.Reporting,
		WithAssistantOrganizationAuthorizer(authorizer),
	)

	container.ServiceToken = NewServiceTokenService(repos.ServiceTokenRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.OrganizationSvcFacade = (*organizationService)(nil)
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.RecurringSvcFacade    = (*recurringService)(nil)
)
