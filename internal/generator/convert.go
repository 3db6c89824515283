package generator

// schemaForExample derives the schema recorded next to an example payload.
// Only the top-level shape is described; fields are never inferred.
func schemaForExample(example interface{}) Schema {
	switch example.(type) {
	case []interface{}:
		return Schema{
			Type:  "array",
			Items: &Schema{Type: "object"},
		}
	default:
		return Schema{Type: "object"}
	}
}

// hasExample reports whether an example carries any content. Empty objects
// and arrays count as no example at all.
func hasExample(example interface{}) bool {
	switch v := example.(type) {
	case nil:
		return false
	case map[string]interface{}:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}
