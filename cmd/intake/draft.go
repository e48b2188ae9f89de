package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/app/services/core/forms"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"

	"gopkg.in/yaml.v3"
)

func loadDraftFile(form *forms.Controller, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return loadDraft(form, data)
}

// loadDraft sets every top-level key of a YAML document as a form field.
// Scalars are passed as their source text so values like 00123 or
// +14441234567 reach the form unchanged.
func loadDraft(form *forms.Controller, data []byte) error {
	nodes := map[string]yaml.Node{}
	err := yaml.Unmarshal(data, &nodes)
	if err != nil {
		return fmt.Errorf("parse draft: %w", err)
	}
	for name, node := range nodes {
		var value interface{}
		switch {
		case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
			continue
		case node.Kind == yaml.ScalarNode:
			value = node.Value
		default:
			err = node.Decode(&value)
			if err != nil {
				return fmt.Errorf("parse draft field %s: %w", name, err)
			}
		}
		err = form.SetField(name, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func attachDocumentFile(form *forms.Controller, path, contentType string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	return form.SetField(constvars.FormFieldIdentificationDocument, requests.IdentificationFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	})
}

type printNavigator struct {
	out io.Writer
}

func newPrintNavigator(out io.Writer) contracts.Navigator {
	return &printNavigator{out: out}
}

func (n *printNavigator) GoTo(ctx context.Context, path string) {
	fmt.Fprintf(n.out, "redirect: %s\n", path)
}
