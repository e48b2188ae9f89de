package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingOperationKey          = "operation"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingIsClientRequestIDKey  = "is_client_request_id"
	LoggingStatusCodeKey         = "status_code"
	LoggingOwnerIDKey            = "owner_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingFieldNameKey          = "field_name"
	LoggingSubmitStatusKey       = "submit_status"
	LoggingRedisKey              = "redis_key"
	LoggingRetryAfterKey         = "retry_after_secs"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingQueueNameKey          = "queue_name"
	LoggingErrorLocationKey      = "location"
)
