package models

// CertificateData asks for a template to be paired with fill-in values.
// InputValues is keyed by TextInput id; keys are passed through unchecked.
// An empty template id is a lookup miss, not a validation error.
type CertificateData struct {
	TemplateID  *string           `json:"templateId" validate:"required"`
	InputValues map[string]string `json:"inputValues" validate:"required"`
}

// Certificate is what the client needs to render a certificate.
type Certificate struct {
	Template    Template          `json:"template"`
	InputValues map[string]string `json:"inputValues"`
}
