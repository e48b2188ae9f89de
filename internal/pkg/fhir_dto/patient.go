package fhir_dto

type Patient struct {
	ID                  string           `json:"id,omitempty"`
	ResourceType        string           `json:"resourceType,omitempty"`
	Active              bool             `json:"active,omitempty"`
	Name                []HumanName      `json:"name,omitempty"`
	Telecom             []ContactPoint   `json:"telecom,omitempty"`
	Gender              string           `json:"gender,omitempty"`
	BirthDate           string           `json:"birthDate,omitempty"`
	Address             []Address        `json:"address,omitempty"`
	Contact             []PatientContact `json:"contact,omitempty"`
	GeneralPractitioner []Reference      `json:"generalPractitioner,omitempty"`
	Identifier          []Identifier     `json:"identifier,omitempty"`
	Extension           []Extension      `json:"extension,omitempty"`
}

type PatientContact struct {
	Relationship []CodeableConcept `json:"relationship,omitempty"`
	Name         *HumanName        `json:"name,omitempty"`
	Telecom      []ContactPoint    `json:"telecom,omitempty"`
}
