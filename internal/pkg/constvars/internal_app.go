package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_NAVIGATION_TARGET_KEY    ContextKey = "navigation_target"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
