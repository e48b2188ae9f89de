package forms

import (
	_ "embed"
	"patient-intake-service/internal/pkg/dto/responses"
	"patient-intake-service/internal/pkg/exceptions"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed form_definition.yaml
var formDefinitionYAML []byte

var (
	formDefinitionInstance *responses.FormDefinition
	formDefinitionErr      error
	onceFormDefinition     sync.Once
)

// LoadFormDefinition parses the embedded intake form definition once.
// Callers get a shared value and must not mutate it.
func LoadFormDefinition() (*responses.FormDefinition, error) {
	onceFormDefinition.Do(func() {
		formDefinitionInstance, formDefinitionErr = ParseFormDefinition(formDefinitionYAML)
	})
	return formDefinitionInstance, formDefinitionErr
}

func ParseFormDefinition(data []byte) (*responses.FormDefinition, error) {
	definition := new(responses.FormDefinition)
	err := yaml.Unmarshal(data, definition)
	if err != nil {
		return nil, exceptions.ErrReadFormDefinition(exceptions.ErrCannotParseYAML(err))
	}
	if definition.DefaultValues == nil {
		definition.DefaultValues = map[string]interface{}{}
	}
	return definition, nil
}
