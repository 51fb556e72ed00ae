// Package ignorefile writes ignore-pattern files: the initial template and
// operator-supplied patterns appended afterwards.
package ignorefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/output"
	"github.com/opmodel/ignoregen/internal/templates"
)

// DefaultPath is the ignore file written when no path is given.
const DefaultPath = ".gitignore"

// CustomHeader is the comment line written before appended patterns.
const CustomHeader = "# Custom patterns"

const fileMode = 0o644

// ConfirmFunc asks the operator a yes/no question.
type ConfirmFunc func(question string) (bool, error)

// CreateResult describes a successful Create.
type CreateResult struct {
	// Path is the file that was written.
	Path string

	// Size is the file size in bytes after writing.
	Size int64

	// Template is the project type whose template was written.
	Template templates.ProjectType

	// FellBack is true when the requested project type was unsupported
	// and the default template was used instead.
	FellBack bool

	// Overwrote is true when an existing file was replaced.
	Overwrote bool
}

// AppendResult describes a successful Append.
type AppendResult struct {
	// Path is the file that was appended to.
	Path string

	// Count is the number of patterns written.
	Count int
}

// Exists reports whether something exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, oerrors.WrapIO(err, fmt.Sprintf("checking %s", path))
}

// Create writes the template for projectType to path, truncating prior
// content. If path already exists, confirm is asked first; a declined or
// missing confirmation returns ErrCancelled and leaves the file untouched.
// An unsupported projectType falls back to the default template with a
// warning.
func Create(path, projectType string, confirm ConfirmFunc) (*CreateResult, error) {
	exists, err := Exists(path)
	if err != nil {
		return nil, err
	}

	if exists {
		ok := false
		if confirm != nil {
			ok, err = confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
			if err != nil {
				return nil, fmt.Errorf("reading confirmation: %w", err)
			}
		}
		if !ok {
			output.Debug("overwrite declined", "path", path)
			return nil, oerrors.Wrap(oerrors.ErrCancelled, fmt.Sprintf("overwriting %s", path))
		}
	}

	tmpl, fellBack, err := templates.Resolve(projectType)
	if err != nil {
		return nil, err
	}
	if fellBack {
		output.Warn(fmt.Sprintf("project type %q is not supported; using the %s template", projectType, tmpl.Name))
	}

	if err := writeFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, tmpl.Content); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("checking %s", path))
	}

	output.Debug("wrote template", "path", path, "template", tmpl.Name, "bytes", info.Size())

	return &CreateResult{
		Path:      path,
		Size:      info.Size(),
		Template:  tmpl.Name,
		FellBack:  fellBack,
		Overwrote: exists,
	}, nil
}

// Append adds patterns to an existing file at path, one per line, after a
// CustomHeader comment. Order and duplicates are preserved. Append never
// creates the file: a missing path is a not-found error and nothing is
// written.
func Append(path string, patterns []string) (*AppendResult, error) {
	exists, err := Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("%s does not exist", path),
			path,
			"Write the template first, then add custom patterns.",
		)
	}

	if err := writeFile(path, os.O_WRONLY|os.O_APPEND, FormatPatterns(patterns)); err != nil {
		return nil, err
	}

	output.Debug("appended patterns", "path", path, "count", len(patterns))

	return &AppendResult{Path: path, Count: len(patterns)}, nil
}

// FormatPatterns renders the block Append writes: a blank line, the
// CustomHeader, then each pattern on its own line.
func FormatPatterns(patterns []string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(CustomHeader)
	b.WriteString("\n")
	for _, p := range patterns {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

func writeFile(path string, flag int, content string) error {
	f, err := os.OpenFile(path, flag, fileMode)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("opening %s", path))
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
	}

	if err := f.Close(); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("closing %s", path))
	}
	return nil
}
