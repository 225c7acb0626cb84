package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Summary SummarySvcFacade
	Edit    InlineEditSvcFacade
	Charts  ChartSvcFacade
}
