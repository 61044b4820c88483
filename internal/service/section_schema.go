package service

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	sectionSchemas map[string]*jsonschema.Schema
	schemaErr      error
)

func compileSectionSchemas() (map[string]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		sectionSchemas = make(map[string]*jsonschema.Schema, len(model.Sections))
		for _, name := range model.Sections {
			raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
			if err != nil {
				schemaErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			compiler := jsonschema.NewCompiler()
			compiler.Draft = jsonschema.Draft2020
			url := name + ".json"
			if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
			schema, err := compiler.Compile(url)
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			sectionSchemas[name] = schema
		}
	})
	return sectionSchemas, schemaErr
}

// validateSectionPayload checks raw against the section's JSON schema.
// Problems with the payload come back as a ValidationError.
func validateSectionPayload(section string, raw json.RawMessage) error {
	schemas, err := compileSectionSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[section]
	if !ok {
		return appErrors.NewValidation("section", fmt.Errorf("unknown section %q", section))
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return appErrors.NewValidation("content", fmt.Errorf("invalid JSON: %w", err))
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return appErrors.NewValidation("content", errors.New(strings.Join(schemaIssues(ve), "; ")))
		}
		return err
	}
	return nil
}

func schemaIssues(err *jsonschema.ValidationError) []string {
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			loc := strings.TrimSpace(node.InstanceLocation)
			if loc == "" {
				loc = "/"
			}
			issues = append(issues, loc+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
