package analyzer

import (
	"regexp"
)

// routePattern matches CROW_ROUTE(app, "/path").methods(...)(...){ where the
// handler signature before the opening brace may span several lines.
var routePattern = regexp.MustCompile(`(?s)CROW_ROUTE\(\s*\w+\s*,\s*"(.*?)"\s*\)\s*\.methods\((.*?)\)\s*\(.*?\{`)

// parseRoutes scans content for route declarations in textual order and
// fills in the documentation details of each one.
func (a *Analyzer) parseRoutes(source, content string, analysis *Analysis) {
	for _, loc := range routePattern.FindAllStringSubmatchIndex(content, -1) {
		rawPath := content[loc[2]:loc[3]]
		methodList := content[loc[4]:loc[5]]

		path := a.normalizePath(rawPath)
		route := Route{
			Path:       path,
			RawPath:    rawPath,
			Methods:    a.parseMethods(methodList),
			Offset:     loc[0],
			Source:     source,
			Doc:        findDocBlock(content, loc[0]),
			Parameters: a.extractPathParameters(path),
		}

		route.Details = a.extractDetails(route.Doc, func(field, payload string, err error) {
			diag := Diagnostic{
				Source:  source,
				Path:    path,
				Field:   field,
				Payload: normalizePayload(payload),
				Err:     err,
			}
			a.logger.Warn("failed to parse example payload",
				"source", source,
				"path", path,
				"field", field,
				"payload", diag.Payload,
				"error", err,
			)
			analysis.Diagnostics = append(analysis.Diagnostics, diag)
		})

		if len(route.Methods) == 0 {
			a.logger.Debug("route has no recognised methods", "source", source, "path", path, "methods", methodList)
		} else {
			a.logger.Debug("found route", "source", source, "path", path, "methods", route.Methods, "documented", route.Doc.Found())
		}

		analysis.Routes = append(analysis.Routes, route)
	}
}
