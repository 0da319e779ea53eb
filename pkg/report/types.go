// Package report defines the report document assembled from collector
// results. It follows Kubernetes-style resource conventions with Kind,
// APIVersion and Metadata fields so serialized reports stay self-describing.
package report

const (
	// APIDomain is the API domain for report resources
	APIDomain = "zyfetch.dev"

	// APIVersion is the current API version for reports
	APIVersion = "v1alpha1"

	// FullAPIVersion is the complete API version string
	FullAPIVersion = APIDomain + "/" + APIVersion

	// Kind is the resource kind for reports
	Kind = "Report"
)

// Well-known metadata keys set on every report.
const (
	MetadataVersion     = "zyfetch-version"
	MetadataReportID    = "report-id"
	MetadataCollectedAt = "collected-at"
)

// Field is a single collected value, keyed by a stable machine name and
// carrying the label used for display. NotImplemented marks placeholder
// fields that exist in the document but have no real probe behind them.
type Field struct {
	Name           string `json:"name" yaml:"name"`
	Label          string `json:"label" yaml:"label"`
	Value          string `json:"value" yaml:"value"`
	NotImplemented bool   `json:"notImplemented,omitempty" yaml:"notImplemented,omitempty"`
}

// Report is an ordered set of collected fields plus resource metadata.
// Field order is significant and becomes the line order of text output.
type Report struct {
	// Kind is the type of the report object.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the report object.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the collection run.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Fields holds the collected values in collection order.
	Fields []Field `json:"fields" yaml:"fields"`
}

// Option is a functional option for configuring Report instances.
type Option func(*Report)

// WithMetadata returns an Option that adds a metadata key-value pair to
// the Report. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(r *Report) {
		if r.Metadata == nil {
			r.Metadata = make(map[string]string)
		}
		r.Metadata[key] = value
	}
}

// New creates a new Report with the default kind and API version applied.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Report {
	r := &Report{
		Kind:       Kind,
		APIVersion: FullAPIVersion,
		Metadata:   make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Append adds fields to the end of the report, preserving order.
func (r *Report) Append(fields ...Field) {
	r.Fields = append(r.Fields, fields...)
}

// Field returns the field with the given name, if present.
func (r *Report) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
