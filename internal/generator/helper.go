package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Aman-s12345/crowdoc/internal/analyzer"
)

const jsonMediaType = "application/json"

func (g *Generator) generateOperation(route analyzer.Route, method string) *Operation {
	details := route.Details

	operation := &Operation{
		Summary:     details.Brief,
		Description: details.Brief,
		OperationID: g.generateOperationID(route.Path, method),
		Parameters:  []Parameter{},
		Responses:   make(map[string]Response),
	}

	if tag := g.getResourceFromPath(route.Path); tag != "" {
		operation.Tags = []string{tag}
	}

	for _, param := range route.Parameters {
		operation.Parameters = append(operation.Parameters, Parameter{
			Name:        param.Name,
			In:          param.In,
			Required:    param.Required,
			Description: param.Description,
			Schema:      Schema{Type: param.Type},
		})
	}

	if hasExample(details.Request) {
		operation.RequestBody = &RequestBody{
			Required: true,
			Content: map[string]MediaType{
				jsonMediaType: {
					Schema:  schemaForExample(details.Request),
					Example: details.Request,
				},
			},
		}
	}

	response := Response{
		Description: details.Status.Description,
	}
	if hasExample(details.Response) {
		response.Content = map[string]MediaType{
			jsonMediaType: {
				Schema:  schemaForExample(details.Response),
				Example: details.Response,
			},
		}
	}
	operation.Responses[details.Status.Code] = response

	return operation
}

// generateOperationID turns get + /users/{id} into get_users_id.
func (g *Generator) generateOperationID(path, method string) string {
	path = strings.ReplaceAll(path, "/", "_")
	path = strings.ReplaceAll(path, "{", "")
	path = strings.ReplaceAll(path, "}", "")
	path = strings.ReplaceAll(path, "-", "_")
	path = strings.Trim(path, "_")

	if path == "" {
		return method + "_root"
	}
	return method + "_" + path
}

func (g *Generator) generateTagDescription(tagName string) string {
	if tagName == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(tagName)
	return string(unicode.ToUpper(first)) + tagName[size:] + " related endpoints"
}

// getResourceFromPath returns the first literal segment of a path, which is
// used as the operation tag.
func (g *Generator) getResourceFromPath(path string) string {
	for _, part := range strings.Split(path, "/") {
		if part != "" && !strings.HasPrefix(part, "{") && !strings.HasPrefix(part, "<") {
			return part
		}
	}
	return ""
}
