// Package generate runs the interactive ignore-file session: write the
// template, then optionally collect and append custom patterns.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"

	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/ignorefile"
	"github.com/opmodel/ignoregen/internal/output"
	"github.com/opmodel/ignoregen/internal/prompt"
)

// Options configures a Session.
type Options struct {
	// Path is the ignore file to write. Defaults to ignorefile.DefaultPath.
	Path string

	// ProjectType selects the template. Unsupported values fall back to
	// the default template.
	ProjectType string
}

// Result summarizes a completed session.
type Result struct {
	// Created is set when the template was written.
	Created *ignorefile.CreateResult

	// Appended is set when custom patterns were appended.
	Appended *ignorefile.AppendResult

	// Cancelled is true when the operator declined to overwrite.
	Cancelled bool

	// Errors holds operation failures that were reported to the operator.
	Errors []error
}

// Session drives one pass of the interactive workflow.
type Session struct {
	opts     Options
	prompter *prompt.Prompter
	out      io.Writer
}

// NewSession creates a session reading answers from in and writing
// operator-facing text to out.
func NewSession(opts Options, in io.Reader, out io.Writer) *Session {
	if opts.Path == "" {
		opts.Path = ignorefile.DefaultPath
	}
	return &Session{
		opts:     opts,
		prompter: prompt.New(in, out),
		out:      out,
	}
}

// Run executes the session. Write and append failures are reported on the
// session output and collected in Result.Errors; they do not stop the
// session and are not returned. Run returns an error only when reading
// operator input fails or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	s.println(output.StyleSummary.Render(fmt.Sprintf("=== %s generator ===", ignorefile.DefaultPath)))
	s.println("")

	if err := s.create(res); err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	s.println("")
	add, err := s.prompter.Confirm("Add custom patterns?")
	if err != nil {
		return res, err
	}

	if add {
		s.println("Enter patterns to add (empty line to finish):")
		patterns, err := s.prompter.Lines()
		if err != nil {
			return res, err
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if len(patterns) > 0 {
			s.appendPatterns(res, patterns)
		} else {
			output.Debug("no patterns entered")
		}
	}

	s.println("")
	s.println(output.StyleSummary.Render("Done!"))

	return res, nil
}

// create runs the template writer and reports the outcome. Only input
// errors from the overwrite prompt are returned.
func (s *Session) create(res *Result) error {
	confirm := func(question string) (bool, error) {
		ok, err := s.prompter.Confirm(question)
		if err != nil {
			return false, &inputError{err: err}
		}
		return ok, nil
	}

	created, err := ignorefile.Create(s.opts.Path, s.opts.ProjectType, confirm)
	switch {
	case err == nil:
		res.Created = created
		s.println(output.FormatCheckmark(fmt.Sprintf("Created %s", output.FormatNoun(created.Path))))
		s.println(output.StyleDim.Render(fmt.Sprintf("  File size: %d bytes", created.Size)))
		return nil
	case errors.Is(err, oerrors.ErrCancelled):
		res.Cancelled = true
		s.println(output.FormatCancelled("Operation cancelled."))
		return nil
	case isInputError(err):
		return err
	default:
		res.Errors = append(res.Errors, err)
		output.Debug("template write failed", "path", s.opts.Path, "error", err)
		s.println(output.FormatFailure(fmt.Sprintf("An error occurred: %v", err)))
		return nil
	}
}

func (s *Session) appendPatterns(res *Result, patterns []string) {
	appended, err := ignorefile.Append(s.opts.Path, patterns)
	if err != nil {
		res.Errors = append(res.Errors, err)
		output.Debug("append failed", "path", s.opts.Path, "error", err)

		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			s.println(output.FormatFailure(fmt.Sprintf("%s. %s", detail.Message, detail.Hint)))
		} else {
			s.println(output.FormatFailure(fmt.Sprintf("An error occurred: %v", err)))
		}
		return
	}

	res.Appended = appended
	s.println(output.FormatCheckmark(fmt.Sprintf("Added %d pattern(s).", appended.Count)))
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// inputError marks failures reading the overwrite confirmation.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func isInputError(err error) bool {
	var ie *inputError
	return errors.As(err, &ie)
}
