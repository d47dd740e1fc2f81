package metadata

// Field identifies one attribute of Metadata.
type Field int

const (
	FieldName Field = iota
	FieldVersion
	FieldDescription
	FieldAuthors
	FieldLicense
	FieldKeywords
	FieldDependencies
	FieldScripts
)

var fieldNames = [...]string{
	FieldName:         "name",
	FieldVersion:      "version",
	FieldDescription:  "description",
	FieldAuthors:      "authors",
	FieldLicense:      "license",
	FieldKeywords:     "keywords",
	FieldDependencies: "dependencies",
	FieldScripts:      "scripts",
}

// String returns the lower-case field name used in reports.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// MarshalText renders the field by name in JSON and YAML output.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Fields returns every field in report order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldVersion,
		FieldDescription,
		FieldAuthors,
		FieldLicense,
		FieldKeywords,
		FieldDependencies,
		FieldScripts,
	}
}
