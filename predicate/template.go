package predicate

import (
	"strings"
	"text/template"

	"github.com/mitchellh/go-wordwrap"
)

const diagnosticTemplate = `assertion failed at {{.Path}}

expected: {{.Expectation}}
{{- if .Detail}}
{{.Detail}}
{{- end}}
`

var parsedDiagnosticTemplate = template.Must(template.New("diagnostic").Parse(diagnosticTemplate))

type templateVariables struct {
	Path        string
	Expectation string
	Detail      string
}

// Diagnostic renders the failure as a multi-line, human-readable message. Successful outcomes render to an
// empty string.
func (o Outcome) Diagnostic() string {
	if o.OK {
		return ""
	}

	vars := templateVariables{
		Path:        o.Path,
		Expectation: wordwrap.WrapString(o.Expectation, 80),
		Detail:      o.Detail,
	}

	var buf strings.Builder
	if renderErr := parsedDiagnosticTemplate.Execute(&buf, vars); renderErr != nil {
		return "assertion failed at " + o.Path + ": expected " + o.Expectation
	}

	return strings.TrimRight(buf.String(), "\n")
}
