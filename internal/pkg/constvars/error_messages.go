package constvars

// Validation messages mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":              "is required",
	"email":                 "must be a valid email",
	"min":                   "must be at least %s characters long",
	"max":                   "maximum at %s characters long",
	"oneof":                 "must be one of [%s]",
	"phone_number":          "must be a valid phone number",
	"document_content_type": "must be an image or a PDF document",
}

// Per-field overrides for messages the generic tag text reads badly for
var CustomFieldValidationErrorMessages = map[string]string{
	"treatmentConsent.required":  "You must consent to treatment in order to proceed",
	"disclosureConsent.required": "You must consent to disclosure in order to proceed",
	"privacyConsent.required":    "You must consent to privacy in order to proceed",
	"primaryPhysician.required":  "Select at least one doctor",
	"birthDate.required":         "Date of birth is required",
}

// Tags whose message carries the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidBirthDate              = "date of birth is not a valid date"
	ErrClientRegistrationFailed            = "we could not save your information, please try again"
	ErrClientSubmissionInProgress          = "your previous submission is still being processed"
	ErrClientFormInvalid                   = "please correct the highlighted fields"
	ErrClientInvalidDocument               = "identification document must be an image or PDF under the size limit"
	ErrClientUnknownField                  = "the form contains an unknown field"
	ErrClientTooManySubmissions            = "too many submissions, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput                    = "invalid input"
	ErrDevValidationFailed                = "validation failed"
	ErrDevCannotParseJSON                 = "cannot parse JSON"
	ErrDevCannotParseYAML                 = "cannot parse YAML"
	ErrDevCannotParseMultipartForm        = "cannot parse multipart form"
	ErrDevCannotMarshalJSON               = "cannot marshal JSON"
	ErrDevCannotReadFile                  = "cannot read uploaded file"
	ErrDevInvalidBirthDate                = "birth date %q cannot be normalized"
	ErrDevMissingBirthDate                = "birth date is missing"
	ErrDevUnknownFormField                = "unknown form field %q"
	ErrDevInvalidFormFieldValue           = "form field %q does not accept %T"
	ErrDevDocumentTooLarge                = "identification document exceeds %d bytes"
	ErrDevServerDeadlineExceeded          = "server deadline exceeded"
	ErrDevServerProcess                   = "server process failed"
	ErrDevRegisterPatient                 = "remote patient registration failed"
	ErrDevEmptyRegistration               = "remote patient registration returned no identifier"
	ErrDevRegistrationPanicked            = "remote patient registration panicked: %v"
	ErrDevNavigationPanicked              = "navigation after patient registration panicked: %v"
	ErrDevSubmissionInProgress            = "submission already in progress for owner %s"
	ErrDevSubmissionQuotaExceeded         = "submission quota exceeded for owner %s"
	ErrDevCreateHTTPRequest               = "failed to create HTTP request"
	ErrDevSendHTTPRequest                 = "failed to send HTTP request"
	ErrDevRateLimitWait                   = "outbound rate limiter wait failed"
	ErrDevSparkCreateFHIRResource         = "failed to create FHIR resource %s"
	ErrDevSparkDecodeFHIRResourceResponse = "failed to decode FHIR resource %s response"
	ErrDevMinioFailedToCreateObject       = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject      = "failed to presign object in bucket %s"
	ErrDevRedisGetNoData                  = "no data found in redis for key %s"
	ErrDevRedisGetData                    = "failed to get data from redis"
	ErrDevRedisSetData                    = "failed to set data to redis"
	ErrDevRedisDeleteData                 = "failed to delete data from redis"
	ErrDevRedisUnlock                     = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage          = "failed to publish message to queue %s"
	ErrDevMongoDBInsertDocument           = "failed to insert document"
	ErrDevReadFormDefinition              = "failed to read form definition"
)

const (
	ResponseUnknown = "unknown"
)
