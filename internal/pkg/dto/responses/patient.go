package responses

type RegisteredPatient struct {
	ID                        string `json:"id"`
	IdentificationDocumentURL string `json:"identification_document_url,omitempty"`
}

type RegisterPatient struct {
	Redirect string `json:"redirect"`
}

type IntakeValidationErrors struct {
	Errors map[string]string `json:"errors"`
}
