package report

import "strings"

const (
	banner    = "⚡ zyfetch ⚡"
	separator = "------------"
)

// RenderText renders the report in the classic terminal layout: a banner
// line, a separator line, then one "Label: value" line per field in
// report order.
func (r *Report) RenderText() string {
	var b strings.Builder
	b.WriteString(banner)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')
	for _, f := range r.Fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
