package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	User    UserSvcFacade
	Reward  RewardSvcFacade
	Quiz    QuizSvcFacade
	BikeLog BikeLogSvcFacade
}
