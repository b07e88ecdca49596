package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/resumeform/internal/config"
	"github.com/Makepad-fr/resumeform/internal/document"
	"github.com/Makepad-fr/resumeform/internal/logging"
	"github.com/Makepad-fr/resumeform/internal/model"
	"github.com/Makepad-fr/resumeform/internal/store/jsonstore"
	"github.com/Makepad-fr/resumeform/internal/tui"
)

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvDir, filepath.Join(dir, "data"))
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvPrintPath, "")
	t.Setenv(config.EnvScrollThreshold, "")
	t.Setenv(config.EnvTheme, "mono")
	return filepath.Join(dir, "data")
}

func seed(t *testing.T, dir string) {
	t.Helper()
	blob, err := document.Encode(model.ResumeDocument{
		PersonalInfo: model.PersonalInfo{FullName: "Jane Doe", Email: "jane@x.io"},
		Education:    []model.EducationEntry{{School: "MIT", Degree: "BSc", Year: "2015"}},
		Skills:       []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	require.NoError(t, jsonstore.New(dir).Set(document.StorageKey, blob))
}

func run(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestWhere(t *testing.T) {
	dir := testDir(t)
	code, out, _ := run("where")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, filepath.Join(dir, jsonstore.DataFileName)+"\n", out)
}

func TestExportWithoutData(t *testing.T) {
	testDir(t)
	code, _, errOut := run("export")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "no saved resume")
}

func TestExportPrettyPrints(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)
	code, out, _ := run("export")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"fullName": "Jane Doe"`)
	assert.Contains(t, out, `"SQL"`)
}

func TestPrintToStdout(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)
	code, out, _ := run("print")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "JANE DOE")
	assert.Contains(t, out, "MIT, BSc (2015)")
	assert.Contains(t, out, "Go, SQL")
}

func TestPrintToFile(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)
	dest := filepath.Join(t.TempDir(), "out", "resume.txt")

	code, out, _ := run("print", "--out", dest)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "printed to "+dest)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "JANE DOE")
}

func TestPrintRejectsCorruptDocument(t *testing.T) {
	dir := testDir(t)
	require.NoError(t, jsonstore.New(dir).Set(document.StorageKey, "not json"))
	code, _, errOut := run("print")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "stored resume is unusable")
}

func TestReset(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)
	code, out, _ := run("reset")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "storage cleared")

	code, _, _ = run("export")
	assert.Equal(t, ExitError, code)
}

func TestUsageErrors(t *testing.T) {
	testDir(t)
	for _, args := range [][]string{
		{"bogus"},
		{"where", "extra"},
		{"print", "--nope"},
	} {
		code, _, errOut := run(args...)
		assert.Equal(t, ExitUsage, code, args)
		assert.Contains(t, errOut, "resumeform --help", args)
	}
}

func TestInvalidConfigFile(t *testing.T) {
	testDir(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"loud"}`), 0o600))
	code, _, errOut := run("--config", path, "where")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "config error")
}

func TestEditRestoresAndRunsTUI(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)

	called := 0
	prev := runTUI
	runTUI = func(m tui.Model) error {
		called++
		assert.Contains(t, m.View(), "loading")
		return nil
	}
	t.Cleanup(func() { runTUI = prev })

	code, _, _ := run()
	assert.Equal(t, ExitOK, code)
	code, _, _ = run("edit")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 2, called)

	logged, err := os.ReadFile(filepath.Join(dir, "resumeform.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "form opened")
	assert.Contains(t, string(logged), "scroll_threshold=2")
}

func TestCommandsLogThroughDefault(t *testing.T) {
	dir := testDir(t)
	seed(t, dir)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	code, _, errOut := run("reset")
	require.Equal(t, ExitOK, code)
	_, ok := slog.Default().Handler().(*logging.Handler)
	assert.True(t, ok)
	assert.Contains(t, errOut, "storage cleared")
}
