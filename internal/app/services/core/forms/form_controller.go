package forms

import (
	"context"
	"fmt"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/utils"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// Schema turns a draft into its validation errors.
type Schema func(draft *requests.PatientIntakeDraft) requests.ValidationErrorSet

// Listener is told the wire name of every field that changed.
type Listener func(fieldName string)

// SubmitHandler receives a frozen copy of a draft that passed validation.
type SubmitHandler func(ctx context.Context, draft *requests.PatientIntakeDraft)

// Controller holds the values and validation errors of one intake form.
// All methods are safe for concurrent use.
type Controller struct {
	mu        sync.RWMutex
	schema    Schema
	defaults  map[string]interface{}
	draft     *requests.PatientIntakeDraft
	errors    requests.ValidationErrorSet
	listeners map[int]Listener
	nextID    int
}

// NewController builds a form seeded with defaults. A nil schema uses the
// intake validation rules.
func NewController(schema Schema, defaults map[string]interface{}) (*Controller, error) {
	if schema == nil {
		schema = utils.ValidateIntakeDraft
	}
	c := &Controller{
		schema:    schema,
		defaults:  defaults,
		listeners: map[int]Listener{},
	}
	draft, err := buildDefaultDraft(defaults)
	if err != nil {
		return nil, err
	}
	c.draft = draft
	return c, nil
}

// NewDefaultController builds a form from the embedded form definition.
func NewDefaultController() (*Controller, error) {
	definition, err := LoadFormDefinition()
	if err != nil {
		return nil, err
	}
	return NewController(nil, definition.DefaultValues)
}

func buildDefaultDraft(defaults map[string]interface{}) (*requests.PatientIntakeDraft, error) {
	draft := new(requests.PatientIntakeDraft)
	for name, value := range defaults {
		err := assignField(draft, name, value)
		if err != nil {
			return nil, err
		}
	}
	return draft, nil
}

func (c *Controller) SetField(name string, value interface{}) error {
	c.mu.Lock()
	err := assignField(c.draft, name, value)
	listeners := c.snapshotListeners()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	for _, listener := range listeners {
		listener(name)
	}
	return nil
}

// OnChange registers listener and returns a function that removes it.
func (c *Controller) OnChange(listener Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Controller) snapshotListeners() []Listener {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	return listeners
}

// Values returns a deep copy of the current draft.
func (c *Controller) Values() *requests.PatientIntakeDraft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draft.Clone()
}

// Validate recomputes the error set from the current values and keeps it.
func (c *Controller) Validate() requests.ValidationErrorSet {
	snapshot := c.Values()
	errs := c.schema(snapshot)
	if errs == nil {
		errs = requests.ValidationErrorSet{}
	}

	c.mu.Lock()
	c.errors = errs
	c.mu.Unlock()
	return copyErrors(errs)
}

// Errors returns the error set of the last Validate call.
func (c *Controller) Errors() requests.ValidationErrorSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyErrors(c.errors)
}

// HandleSubmit runs handler with a snapshot of the draft only when the draft
// validates, and reports whether it ran.
func (c *Controller) HandleSubmit(ctx context.Context, handler SubmitHandler) bool {
	snapshot := c.Values()
	errs := c.schema(snapshot)
	if errs == nil {
		errs = requests.ValidationErrorSet{}
	}

	c.mu.Lock()
	c.errors = errs
	c.mu.Unlock()

	if !errs.IsEmpty() {
		return false
	}
	handler(ctx, snapshot)
	return true
}

// Reset puts the defaults back and clears errors.
func (c *Controller) Reset() error {
	draft, err := buildDefaultDraft(c.defaults)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.draft = draft
	c.errors = nil
	c.mu.Unlock()
	return nil
}

func copyErrors(errs requests.ValidationErrorSet) requests.ValidationErrorSet {
	copied := make(requests.ValidationErrorSet, len(errs))
	for field, message := range errs {
		copied[field] = message
	}
	return copied
}

var (
	draftFieldIndex     map[string]int
	onceDraftFieldIndex sync.Once
)

// fieldIndex maps every json wire name of the draft to its struct field.
func fieldIndex() map[string]int {
	onceDraftFieldIndex.Do(func() {
		draftType := reflect.TypeOf(requests.PatientIntakeDraft{})
		draftFieldIndex = make(map[string]int, draftType.NumField())
		for i := 0; i < draftType.NumField(); i++ {
			name := strings.SplitN(draftType.Field(i).Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				continue
			}
			draftFieldIndex[name] = i
		}
	})
	return draftFieldIndex
}

var (
	birthDateInputType     = reflect.TypeOf(requests.BirthDateInput{})
	identificationFileType = reflect.TypeOf([]requests.IdentificationFile{})
)

func assignField(draft *requests.PatientIntakeDraft, name string, value interface{}) error {
	index, ok := fieldIndex()[name]
	if !ok {
		return exceptions.ErrUnknownFormField(nil, name)
	}
	field := reflect.ValueOf(draft).Elem().Field(index)

	switch {
	case field.Type() == birthDateInputType:
		birthDate, ok := toBirthDateInput(value)
		if !ok {
			return exceptions.ErrInvalidFormFieldValue(nil, name, value)
		}
		field.Set(reflect.ValueOf(birthDate))
	case field.Type() == identificationFileType:
		files, ok := toIdentificationFiles(value)
		if !ok {
			return exceptions.ErrInvalidFormFieldValue(nil, name, value)
		}
		field.Set(reflect.ValueOf(files))
	case field.Kind() == reflect.Bool:
		checked, ok := toBool(value)
		if !ok {
			return exceptions.ErrInvalidFormFieldValue(nil, name, value)
		}
		field.SetBool(checked)
	case field.Kind() == reflect.String:
		text, ok := value.(string)
		if !ok {
			return exceptions.ErrInvalidFormFieldValue(nil, name, value)
		}
		field.SetString(text)
	default:
		return exceptions.ErrInvalidFormFieldValue(fmt.Errorf("unsupported field kind %s", field.Kind()), name, value)
	}
	return nil
}

func toBirthDateInput(value interface{}) (requests.BirthDateInput, bool) {
	switch v := value.(type) {
	case nil:
		return requests.BirthDateInput{}, true
	case string:
		return requests.BirthDateInput{Text: v}, true
	case time.Time:
		return requests.BirthDateInput{Time: &v}, true
	case *time.Time:
		if v == nil {
			return requests.BirthDateInput{}, true
		}
		t := *v
		return requests.BirthDateInput{Time: &t}, true
	case requests.BirthDateInput:
		return v, true
	}
	return requests.BirthDateInput{}, false
}

func toIdentificationFiles(value interface{}) ([]requests.IdentificationFile, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case []requests.IdentificationFile:
		return v, true
	case requests.IdentificationFile:
		return []requests.IdentificationFile{v}, true
	case *requests.IdentificationFile:
		if v == nil {
			return nil, true
		}
		return []requests.IdentificationFile{*v}, true
	case []interface{}:
		// YAML defaults express an empty uploader as []
		if len(v) == 0 {
			return nil, true
		}
	}
	return nil, false
}

// toBool accepts what checkbox inputs submit.
func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true, true
		case "", "off", "false", "0", "no":
			return false, true
		}
	}
	return false, false
}
