package analyzer

import (
	"regexp"
	"strings"
)

// methodTokens maps the method markers accepted in a .methods(...) list to
// lowercase HTTP method names. Anything not listed here is dropped.
var methodTokens = map[string]string{
	"crow::HTTPMethod::Get":    "get",
	"crow::HTTPMethod::Post":   "post",
	"crow::HTTPMethod::Put":    "put",
	"crow::HTTPMethod::Delete": "delete",
	"crow::HTTPMethod::Patch":  "patch",
	"crow::HTTPMethod::GET":    "get",
	"crow::HTTPMethod::POST":   "post",
	"crow::HTTPMethod::PUT":    "put",
	"crow::HTTPMethod::DELETE": "delete",
	"crow::HTTPMethod::PATCH":  "patch",
	`"GET"_method`:             "get",
	`"POST"_method`:            "post",
	`"PUT"_method`:             "put",
	`"DELETE"_method`:          "delete",
	`"PATCH"_method`:           "patch",
}

var pathParamPattern = regexp.MustCompile(`\{(\w+)\}`)

const intPlaceholder = "<int>"

func (a *Analyzer) isHTTPMethod(token string) bool {
	_, ok := methodTokens[token]
	return ok
}

// parseMethods splits a comma separated method list and maps every known
// token, keeping declaration order and dropping duplicates.
func (a *Analyzer) parseMethods(list string) []string {
	var methods []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if !a.isHTTPMethod(token) {
			if token != "" {
				a.logger.Debug("dropping unknown method token", "token", token)
			}
			continue
		}
		method := methodTokens[token]
		if seen[method] {
			continue
		}
		seen[method] = true
		methods = append(methods, method)
	}
	return methods
}

func (a *Analyzer) normalizePath(path string) string {
	return strings.ReplaceAll(path, intPlaceholder, "{id}")
}

func (a *Analyzer) extractPathParameters(path string) []Parameter {
	var params []Parameter
	for _, match := range pathParamPattern.FindAllStringSubmatch(path, -1) {
		params = append(params, Parameter{
			Name:        match[1],
			In:          "path",
			Required:    true,
			Type:        "string",
			Description: "Path parameter " + match[1],
		})
	}
	return params
}
