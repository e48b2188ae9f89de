package responses

type FormDefinition struct {
	Title         string                 `json:"title" yaml:"title"`
	Description   string                 `json:"description,omitempty" yaml:"description"`
	SubmitLabel   string                 `json:"submit_label" yaml:"submitLabel"`
	Sections      []FormSection          `json:"sections" yaml:"sections"`
	DefaultValues map[string]interface{} `json:"default_values" yaml:"defaultValues"`
}

type FormSection struct {
	Title  string      `json:"title" yaml:"title"`
	Fields []FormField `json:"fields" yaml:"fields"`
}

type FormField struct {
	Name        string       `json:"name" yaml:"name"`
	Kind        string       `json:"kind" yaml:"kind"`
	Label       string       `json:"label" yaml:"label"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder"`
	IconSrc     string       `json:"icon_src,omitempty" yaml:"iconSrc"`
	Options     []FormOption `json:"options,omitempty" yaml:"options"`
	Accept      []string     `json:"accept,omitempty" yaml:"accept"`
}

type FormOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	Image string `json:"image,omitempty" yaml:"image"`
}
