package analyzer

import (
	"regexp"
	"strings"
)

const (
	DefaultBrief             = "No description available"
	DefaultStatusCode        = "200"
	DefaultStatusDescription = "200 OK"
)

// Payload patterns accept a {...} or [...] span with at most one nested
// level of braces. RE2 has no recursion, so deeper nesting simply does not
// match and the field is left empty.
const payloadSpan = `(\{(?:[^{}]|(?:\{[^{}]*\}))*\}|\[(?:[^\[\]]|(?:\{[^{}]*\}))*\])`

var (
	briefPattern    = regexp.MustCompile(`@brief\s+([^\n]*)`)
	statusPattern   = regexp.MustCompile(`@Status\s*:\s*(\d{3}[^"\n]*)`)
	requestPattern  = regexp.MustCompile(`(?s)@Request\s*:\s*` + payloadSpan)
	responsePattern = regexp.MustCompile(`(?s)@Response\s*:\s*` + payloadSpan)

	leadingDecoration = regexp.MustCompile(`^\s*(?:/\*+)?\s*\*?\*?\s*`)
	trailingCloser    = regexp.MustCompile(`\s*\*+/\s*$`)
)

// CleanDocBlock strips comment delimiters and the leading " * " decoration
// from every line of a documentation block.
func CleanDocBlock(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		line = trailingCloser.ReplaceAllString(line, "")
		line = leadingDecoration.ReplaceAllString(line, "")
		lines[i] = line
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractDetails pulls the brief, status and example payloads out of a doc
// block. Missing markers fall back to defaults; payloads that match but do
// not decode are reported through onError and left nil.
func (a *Analyzer) extractDetails(doc DocBlock, onError func(field, payload string, err error)) Details {
	cleaned := CleanDocBlock(doc.Raw)

	details := Details{
		Brief: DefaultBrief,
		Status: Status{
			Code:        DefaultStatusCode,
			Description: DefaultStatusDescription,
		},
	}

	if m := briefPattern.FindStringSubmatch(cleaned); m != nil {
		if brief := strings.TrimSpace(m[1]); brief != "" {
			details.Brief = brief
		}
	}

	if m := statusPattern.FindStringSubmatch(cleaned); m != nil {
		details.Status = parseStatus(m[1])
	}

	if m := requestPattern.FindStringSubmatch(cleaned); m != nil {
		value, err := parsePayload(m[1])
		if err != nil {
			onError("request", m[1], err)
		} else {
			details.Request = value
		}
	}

	if m := responsePattern.FindStringSubmatch(cleaned); m != nil {
		value, err := parsePayload(m[1])
		if err != nil {
			onError("response", m[1], err)
		} else {
			details.Response = value
		}
	}

	return details
}

func parseStatus(text string) Status {
	description := strings.TrimSpace(text)
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return Status{Code: DefaultStatusCode, Description: DefaultStatusDescription}
	}
	return Status{Code: fields[0], Description: description}
}
