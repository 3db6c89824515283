package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndCleanSpec(t *testing.T) {
	g := testGenerator()

	spec := &OpenAPISpec{
		Paths: map[string]*PathItem{
			"/users/{id}/posts/{postId}": {
				Get: &Operation{
					Parameters: []Parameter{
						{Name: "id", In: "path", Required: true, Schema: Schema{Type: "string"}},
						{Name: "stale", In: "path", Required: true, Schema: Schema{Type: "string"}},
						{Name: "limit", In: "query", Schema: Schema{Type: "integer"}},
					},
					Responses: map[string]Response{"200": {Description: "200 OK"}},
				},
			},
			"/gone": nil,
		},
	}

	err := g.ValidateAndCleanSpec(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `path parameter "stale" has no placeholder`)
	assert.NotContains(t, spec.Paths, "/gone")

	params := spec.Paths["/users/{id}/posts/{postId}"].Get.Parameters
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.In+":"+p.Name)
	}
	assert.Equal(t, []string{"path:id", "query:limit", "path:postId"}, names)
	assert.True(t, params[2].Required)
	assert.Equal(t, "string", params[2].Schema.Type)
}

func TestValidateCollapsesRepeatedPlaceholders(t *testing.T) {
	g := testGenerator()

	spec := &OpenAPISpec{
		Paths: map[string]*PathItem{
			"/a/{id}/b/{id}": {
				Post: &Operation{
					Parameters: []Parameter{
						{Name: "id", In: "path", Required: true, Schema: Schema{Type: "string"}},
						{Name: "id", In: "path", Required: true, Schema: Schema{Type: "string"}},
					},
				},
			},
		},
	}

	require.NoError(t, g.ValidateAndCleanSpec(spec))
	assert.Len(t, spec.Paths["/a/{id}/b/{id}"].Post.Parameters, 1)
}
