package analyzer

import "strings"

const (
	docBlockOpen  = "/**"
	docBlockClose = "*/"
)

// findDocBlock returns the nearest /** ... */ block that closes before
// offset. Association is purely positional: the closest preceding block
// wins even when it belongs to some other piece of code, and blocks further
// back are never considered.
func findDocBlock(content string, offset int) DocBlock {
	if offset > len(content) {
		offset = len(content)
	}

	start := strings.LastIndex(content[:offset], docBlockOpen)
	if start == -1 {
		return DocBlock{}
	}

	rel := strings.Index(content[start+len(docBlockOpen):offset], docBlockClose)
	if rel == -1 {
		return DocBlock{}
	}
	end := start + len(docBlockOpen) + rel + len(docBlockClose)

	return DocBlock{
		Raw:   content[start:end],
		Start: start,
		End:   end,
	}
}
