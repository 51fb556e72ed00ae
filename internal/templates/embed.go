package templates

import (
	"embed"
	"fmt"
)

//go:embed data/*.gitignore
var dataFS embed.FS

// load reads the embedded template file for a project type.
func load(name ProjectType) (string, error) {
	b, err := dataFS.ReadFile("data/" + string(name) + ".gitignore")
	if err != nil {
		return "", fmt.Errorf("reading embedded template %s: %w", name, err)
	}
	return string(b), nil
}
