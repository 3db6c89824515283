package analyzer

type Analysis struct {
	Routes      []Route
	Diagnostics []Diagnostic
}

type Route struct {
	Path       string // normalized, e.g. /users/{id}
	RawPath    string // as written in the declaration, e.g. /users/<int>
	Methods    []string
	Offset     int
	Source     string
	Doc        DocBlock
	Details    Details
	Parameters []Parameter
}

type Parameter struct {
	Name        string
	In          string // always "path" for now
	Required    bool
	Type        string
	Description string
}

// DocBlock is a /** ... */ span found before a route declaration. The zero
// value means no block was found.
type DocBlock struct {
	Raw   string
	Start int
	End   int
}

func (d DocBlock) Found() bool {
	return d.Raw != ""
}

// Details holds the fields extracted from one documentation block.
type Details struct {
	Brief    string
	Request  interface{} // nil when absent or unparsable
	Response interface{}
	Status   Status
}

type Status struct {
	Code        string
	Description string
}

// Diagnostic records a payload that was found but could not be decoded.
type Diagnostic struct {
	Source  string
	Path    string
	Field   string // "request" or "response"
	Payload string
	Err     error
}

func (d Diagnostic) Error() string {
	return d.Field + " payload for " + d.Path + ": " + d.Err.Error()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
