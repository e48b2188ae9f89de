package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationFHIRJSON = "application/fhir+json"
	MIMEApplicationPDF      = "application/pdf"
	MIMEOctetStream         = "application/octet-stream"
	MIMEMultipartForm       = "multipart/form-data"
	MIMEImagePNG            = "image/png"
	MIMEImageJPEG           = "image/jpeg"
	MIMEImageGIF            = "image/gif"
	MIMEImageSVG            = "image/svg+xml"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusSeeOther              = 303
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusRequestTimeout        = 408
	StatusConflict              = 409
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusBadGateway            = 502
	StatusGatewayTimeout        = 504
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"
	HeaderXRequestID  = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
)
