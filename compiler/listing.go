package compiler

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// listingTemplate renders a sequence as text for diagnostics: a header with
// the tempo and resolution, then one line per event.
var listingTemplate = template.Must(template.New("listing").Funcs(sprig.TxtFuncMap()).Parse(
	`Schedule: {{ .BeatsPerMinute }} BPM, {{ .TicksPerBeat }} ticks/beat, ends at tick {{ .End }}
{{ repeat 56 "-" }}
{{ range .Events }}Event: {{ printf "%-15v" .Kind }} {{ .DataLabel }}: {{ printf "%-4v" .Data }} Tick: {{ .Tick }}
{{ end }}`))

// Listing renders the sequence as text, one event per line in schedule
// order.
func (s *Sequence) Listing() (string, error) {
	var b strings.Builder
	if err := listingTemplate.Execute(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
