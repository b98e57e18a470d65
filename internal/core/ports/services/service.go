package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Statement   StatementSvcFacade
	User        UserSvcFacade
}
