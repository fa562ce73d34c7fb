package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Organization OrganizationSvcFacade
	Account      AccountSvcFacade
	Transaction  TransactionSvcFacade
	Recurring    RecurringSvcFacade
	Lead         LeadSvcFacade
	Reporting    ReportingService
	Assistant    AssistantSvc
	ServiceToken ServiceTokenSvc

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
