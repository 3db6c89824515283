package generator

import "log/slog"

type Generator struct {
	config Config
	logger *slog.Logger
}

type Config struct {
	OpenAPIVersion    string
	Title             string
	Version           string
	Description       string
	ServerURL         string
	ServerDescription string
}

type OpenAPISpec struct {
	OpenAPI string               `json:"openapi" yaml:"openapi"`
	Info    Info                 `json:"info" yaml:"info"`
	Servers []Server             `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags    []Tag                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths   map[string]*PathItem `json:"paths" yaml:"paths"`
}

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch  *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string              `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []Parameter         `json:"parameters" yaml:"parameters"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	In          string `json:"in" yaml:"in"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      Schema `json:"schema" yaml:"schema"`
}

type RequestBody struct {
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaType `json:"content" yaml:"content"`
	Required    bool                 `json:"required,omitempty" yaml:"required,omitempty"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema  Schema      `json:"schema" yaml:"schema"`
	Example interface{} `json:"example,omitempty" yaml:"example,omitempty"`
}

type Schema struct {
	Type  string  `json:"type,omitempty" yaml:"type,omitempty"`
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// operation returns the operation stored under a lowercase method name.
func (p *PathItem) operation(method string) *Operation {
	switch method {
	case "get":
		return p.Get
	case "post":
		return p.Post
	case "put":
		return p.Put
	case "delete":
		return p.Delete
	case "patch":
		return p.Patch
	}
	return nil
}

func (p *PathItem) setOperation(method string, op *Operation) bool {
	switch method {
	case "get":
		p.Get = op
	case "post":
		p.Post = op
	case "put":
		p.Put = op
	case "delete":
		p.Delete = op
	case "patch":
		p.Patch = op
	default:
		return false
	}
	return true
}

// Operations lists the operations present on the path item keyed by
// lowercase method name.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, method := range []string{"get", "post", "put", "delete", "patch"} {
		if op := p.operation(method); op != nil {
			ops[method] = op
		}
	}
	return ops
}
