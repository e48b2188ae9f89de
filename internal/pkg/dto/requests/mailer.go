package requests

type EmailPayload struct {
	From         string            `json:"from,omitempty"`
	To           string            `json:"to"`
	Subject      string            `json:"subject"`
	TemplateName string            `json:"template_name"`
	TemplateData map[string]string `json:"template_data,omitempty"`
}
