package generator

import (
	"log/slog"
	"sort"

	"github.com/Aman-s12345/crowdoc/internal/analyzer"
)

const DefaultOpenAPIVersion = "3.0.0"

func New(config Config, logger *slog.Logger) *Generator {
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = DefaultOpenAPIVersion
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{config: config, logger: logger}
}

// Generate builds the specification document. Every (route, method) pair
// becomes one operation under paths[path][method]; when two routes share a
// path and method the later one replaces the earlier one.
func (g *Generator) Generate(analysis *analyzer.Analysis) *OpenAPISpec {
	spec := &OpenAPISpec{
		OpenAPI: g.config.OpenAPIVersion,
		Info: Info{
			Title:       g.config.Title,
			Description: g.config.Description,
			Version:     g.config.Version,
		},
		Paths: make(map[string]*PathItem),
	}

	if g.config.ServerURL != "" {
		spec.Servers = []Server{
			{
				URL:         g.config.ServerURL,
				Description: g.config.ServerDescription,
			},
		}
	}

	tags := make(map[string]bool)

	for _, route := range analysis.Routes {
		pathItem, exists := spec.Paths[route.Path]
		if !exists {
			pathItem = &PathItem{}
			spec.Paths[route.Path] = pathItem
		}

		for _, method := range route.Methods {
			operation := g.generateOperation(route, method)

			if pathItem.operation(method) != nil {
				g.logger.Debug("replacing earlier operation", "path", route.Path, "method", method)
			}
			if !pathItem.setOperation(method, operation) {
				g.logger.Warn("skipping unsupported method", "path", route.Path, "method", method)
				continue
			}

			for _, tag := range operation.Tags {
				tags[tag] = true
			}
		}
	}

	tagNames := make([]string, 0, len(tags))
	for name := range tags {
		tagNames = append(tagNames, name)
	}
	sort.Strings(tagNames)
	for _, name := range tagNames {
		spec.Tags = append(spec.Tags, Tag{
			Name:        name,
			Description: g.generateTagDescription(name),
		})
	}

	if err := g.ValidateAndCleanSpec(spec); err != nil {
		g.logger.Warn("validation errors found", "error", err)
	}

	return spec
}
