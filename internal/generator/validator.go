package generator

import (
	"errors"
	"fmt"
	"regexp"
)

var pathPlaceholder = regexp.MustCompile(`\{([^}]+)\}`)

// ValidateAndCleanSpec makes the path parameters of every operation agree
// with the placeholders in its path: stray path parameters are dropped and
// missing ones are added as required strings. Dropped parameters are
// reported in the returned error; the spec is cleaned either way.
func (g *Generator) ValidateAndCleanSpec(spec *OpenAPISpec) error {
	var errs []error
	for path, pathItem := range spec.Paths {
		if pathItem == nil {
			delete(spec.Paths, path)
			continue
		}
		if err := g.validatePathParameters(path, pathItem); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (g *Generator) validatePathParameters(path string, pathItem *PathItem) error {
	var expected []string
	for _, match := range pathPlaceholder.FindAllStringSubmatch(path, -1) {
		expected = append(expected, match[1])
	}

	var errs []error
	for method, operation := range pathItem.Operations() {
		if err := g.validateOperationParameters(operation, expected); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", method, path, err))
		}
	}
	return errors.Join(errs...)
}

func (g *Generator) validateOperationParameters(operation *Operation, expected []string) error {
	expectedSet := make(map[string]bool, len(expected))
	for _, name := range expected {
		expectedSet[name] = true
	}

	var errs []error
	validParams := []Parameter{}
	present := make(map[string]bool)
	for _, param := range operation.Parameters {
		if param.In != "path" {
			validParams = append(validParams, param)
			continue
		}
		if !expectedSet[param.Name] {
			errs = append(errs, fmt.Errorf("path parameter %q has no placeholder", param.Name))
			continue
		}
		if present[param.Name] {
			continue
		}
		present[param.Name] = true
		validParams = append(validParams, param)
	}

	for _, name := range expected {
		if present[name] {
			continue
		}
		present[name] = true
		validParams = append(validParams, Parameter{
			Name:        name,
			In:          "path",
			Required:    true,
			Description: "Path parameter " + name,
			Schema:      Schema{Type: "string"},
		})
	}

	operation.Parameters = validParams
	return errors.Join(errs...)
}
