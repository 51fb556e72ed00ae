// Package templates provides the embedded ignore-file templates.
package templates

// ProjectType identifies a template by the kind of project it targets.
type ProjectType string

// Template is an ignore-file template with its metadata.
type Template struct {
	// Name is the project type the template targets.
	Name ProjectType

	// Description explains what the template covers.
	Description string

	// Content is the exact text written to the ignore file.
	Content string
}
