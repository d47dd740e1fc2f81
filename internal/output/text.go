package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nightconcept/projmeta/internal/core/metadata"
)

var (
	projectNameColor    = color.New(color.FgMagenta, color.Bold, color.Underline).SprintFunc()
	projectVersionColor = color.New(color.FgMagenta).SprintFunc()
	pathColor           = color.New(color.FgHiBlack, color.Bold, color.Underline).SprintFunc()
	headerColor         = color.New(color.FgCyan, color.Bold).SprintFunc()
	fieldColor          = color.New(color.FgWhite).SprintFunc()
	valueColor          = color.New(color.FgYellow).SprintFunc()
	dimColor            = color.New(color.FgHiBlack).SprintFunc()
	warnColor           = color.New(color.FgRed).SprintFunc()
	okColor             = color.New(color.FgGreen).SprintFunc()
)

// Header prints "name@version path" the way project headings are shown.
func Header(w io.Writer, name, version, path string) {
	_, _ = fmt.Fprintf(w, "%s@%s %s\n", projectNameColor(name), projectVersionColor(version), pathColor(path))
}

// Section prints a section title such as "dependencies:".
func Section(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, headerColor(title+":"))
}

// Metadata prints every field of m in report order. The name and version are
// shown in the header instead, and dependencies get a section of their own.
func Metadata(w io.Writer, m metadata.Metadata) {
	for _, f := range metadata.Fields() {
		switch f {
		case metadata.FieldName, metadata.FieldVersion:
			continue
		case metadata.FieldDependencies:
			dependencies(w, m.Dependencies)
		default:
			_, _ = fmt.Fprintf(w, "  %s %s\n", fieldColor(f.String()+":"), valueColor(m.Value(f)))
		}
	}
}

// dependencies prints one "name spec" line per entry. An absent table and a
// present empty one are shown differently.
func dependencies(w io.Writer, deps *metadata.Dependencies) {
	Section(w, "dependencies")
	if deps == nil {
		_, _ = fmt.Fprintln(w, dimColor("  <none>"))
		return
	}
	if deps.Len() == 0 {
		_, _ = fmt.Fprintln(w, dimColor("  {}"))
		return
	}
	for _, name := range deps.Names() {
		spec, ok := deps.Spec(name)
		if !ok {
			spec = "*"
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", fieldColor(name), valueColor(spec))
	}
}

// Line prints s followed by a newline.
func Line(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

// Dim renders s in the secondary color.
func Dim(s string) string { return dimColor(s) }

// Warn renders s in the warning color.
func Warn(s string) string { return warnColor(s) }

// OK renders s in the success color.
func OK(s string) string { return okColor(s) }

// Value renders s in the value color.
func Value(s string) string { return valueColor(s) }

// Field renders s in the field color.
func Field(s string) string { return fieldColor(s) }
