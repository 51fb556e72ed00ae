package ignorefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/templates"
)

func pythonTemplate(t *testing.T) string {
	t.Helper()
	tmpl, err := templates.Get("python")
	require.NoError(t, err)
	return tmpl.Content
}

func answer(ok bool, calls *int) ConfirmFunc {
	return func(string) (bool, error) {
		*calls++
		return ok, nil
	}
}

func TestCreate_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.out")
	calls := 0

	res, err := Create(path, "python", answer(false, &calls))
	require.NoError(t, err)

	assert.Equal(t, 0, calls, "no prompt for a new file")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pythonTemplate(t), string(content))

	assert.Equal(t, path, res.Path)
	assert.Equal(t, int64(len(content)), res.Size)
	assert.Equal(t, templates.Python, res.Template)
	assert.False(t, res.FellBack)
	assert.False(t, res.Overwrote)
}

func TestCreate_ExistingDeclined(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("keep-me\n"), 0o644))
	calls := 0

	res, err := Create(path, "python", answer(false, &calls))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	assert.Equal(t, 1, calls)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep-me\n", string(content))
}

func TestCreate_ExistingNilConfirmDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("keep-me\n"), 0o644))

	_, err := Create(path, "python", nil)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep-me\n", string(content))
}

func TestCreate_ExistingConfirmedReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("old-line\nanother-old-line-that-is-long\n"), 0o644))

	var question string
	res, err := Create(path, "python", func(q string) (bool, error) {
		question = q
		return true, nil
	})
	require.NoError(t, err)

	assert.Contains(t, question, path)
	assert.Contains(t, question, "already exists")
	assert.True(t, res.Overwrote)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pythonTemplate(t), string(content))
	assert.NotContains(t, string(content), "old-line")
}

func TestCreate_ConfirmError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	boom := errors.New("stdin closed")

	_, err := Create(path, "python", func(string) (bool, error) { return false, boom })
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestCreate_UnsupportedTypeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	res, err := Create(path, "haskell", nil)
	require.NoError(t, err)

	assert.True(t, res.FellBack)
	assert.Equal(t, templates.Python, res.Template)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pythonTemplate(t), string(content))
}

func TestCreate_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", ".gitignore")

	res, err := Create(path, "python", nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), path)
}

func TestCreate_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Create(dir, "python", func(string) (bool, error) { return true, nil })
	require.Error(t, err)
	assert.False(t, errors.Is(err, oerrors.ErrCancelled))
}

func TestCreate_ReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	_, err := Create(filepath.Join(dir, ".gitignore"), "python", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPermission))
}

func TestAppend_ToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	prior := "existing/\n"
	require.NoError(t, os.WriteFile(path, []byte(prior), 0o644))

	res, err := Append(path, []string{"*.tmp", "build/", "*.tmp"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, prior+"\n# Custom patterns\n*.tmp\nbuild/\n*.tmp\n", string(content))
}

func TestAppend_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	res, err := Append(path, []string{"*.tmp"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, path, detail.Location)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "append must not create the file")
}

func TestAppend_EmptyPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	res, err := Append(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n\n# Custom patterns\n", string(content))
}

func TestCreateThenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore.out")

	_, err := Create(path, "python", nil)
	require.NoError(t, err)
	_, err = Append(path, []string{"*.tmp", "build/"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pythonTemplate(t)+"\n# Custom patterns\n*.tmp\nbuild/\n", string(content))
}

func TestFormatPatterns(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     string
	}{
		{"none", nil, "\n# Custom patterns\n"},
		{"one", []string{"dist/"}, "\n# Custom patterns\ndist/\n"},
		{"ordered", []string{"b", "a"}, "\n# Custom patterns\nb\na\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPatterns(tt.patterns))
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	ok, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
