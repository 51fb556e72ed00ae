package templates

import (
	"fmt"
	"strings"
)

// Python is the Python project template, and the only one shipped.
const Python ProjectType = "python"

// DefaultProjectType is used when no project type is given and as the
// fallback for unsupported ones.
const DefaultProjectType = Python

// descriptions is the registry of available templates.
var descriptions = map[ProjectType]string{
	Python: "Python projects: bytecode, packaging, test caches, virtualenvs, editor and OS files",
}

// Names returns all supported project types.
func Names() []string {
	return []string{string(Python)}
}

// IsSupported reports whether name matches a shipped template.
func IsSupported(name string) bool {
	_, ok := descriptions[normalize(name)]
	return ok
}

// Get returns the template for a supported project type.
func Get(name string) (Template, error) {
	pt := normalize(name)
	desc, ok := descriptions[pt]
	if !ok {
		return Template{}, fmt.Errorf("unknown project type %q; supported: %s", name, strings.Join(Names(), ", "))
	}
	content, err := load(pt)
	if err != nil {
		return Template{}, err
	}
	return Template{Name: pt, Description: desc, Content: content}, nil
}

// Resolve returns the template for name. An empty name selects the default
// template. An unsupported name also selects the default template and
// reports fellBack=true so the caller can warn; it is never an error.
func Resolve(name string) (tmpl Template, fellBack bool, err error) {
	if strings.TrimSpace(name) == "" {
		name = string(DefaultProjectType)
	}
	if !IsSupported(name) {
		tmpl, err = Get(string(DefaultProjectType))
		return tmpl, true, err
	}
	tmpl, err = Get(name)
	return tmpl, false, err
}

// List returns all available templates.
func List() ([]Template, error) {
	out := make([]Template, 0, len(descriptions))
	for _, name := range Names() {
		t, err := Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func normalize(name string) ProjectType {
	return ProjectType(strings.ToLower(strings.TrimSpace(name)))
}
