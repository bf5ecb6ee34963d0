package element

// FilterSpec names a filter an input-filtering collaborator should apply to a
// submitted value, with optional filter configuration.
type FilterSpec struct {
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// InputSpec is a static descriptor telling an input-filtering collaborator how
// to treat an element's submitted value. It carries no behavior of its own.
type InputSpec struct {
	Name     string       `json:"name" yaml:"name"`
	Required bool         `json:"required" yaml:"required"`
	Filters  []FilterSpec `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// InputSpecProvider is implemented by elements that declare their own input
// specification.
type InputSpecProvider interface {
	InputSpec() InputSpec
}

// CSVField is a field whose submitted value arrives as a single
// comma-separated string and must be split into an array before validation.
type CSVField struct {
	Field
}

// NewCSVField creates a CSV field with the given name.
func NewCSVField(name string) *CSVField {
	return &CSVField{Field: *New(name)}
}

// InputSpec declares the field required and routes its value through the
// StringToArrayFilter.
func (f *CSVField) InputSpec() InputSpec {
	return InputSpec{
		Name:     f.Name(),
		Required: true,
		Filters:  []FilterSpec{{Name: "StringToArrayFilter"}},
	}
}
