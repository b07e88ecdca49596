package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/resumeform/internal/model"
)

func sampleDoc() model.ResumeDocument {
	return model.ResumeDocument{
		PersonalInfo: model.PersonalInfo{FullName: "Jane Doe", Email: "jane@x.com", Phone: "555", Address: "1 Main St"},
		Education:    []model.EducationEntry{{School: "MIT", Degree: "BSc", Year: "1999"}},
		Experience: []model.ExperienceEntry{
			{Company: "ACME", Position: "Engineer", Duration: "2y", Description: "Built rockets\nand more"},
		},
		Skills: []string{"Go", "SQL"},
	}
}

func TestText_FullDocument(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Text(&sb, sampleDoc()))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "JANE DOE\njane@x.com | 555\n1 Main St\n"))
	assert.Contains(t, out, "- MIT, BSc (1999)")
	assert.Contains(t, out, "- Engineer at ACME [2y]\n  Built rockets\n  and more")
	assert.Contains(t, out, "SKILLS\n"+strings.Repeat("-", 40)+"\nGo, SQL\n")
	assert.NotContains(t, out, "(none)")
}

func TestText_EmptyDocument(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Text(&sb, model.ResumeDocument{}))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "-\n"))
	assert.Contains(t, out, "EDUCATION\n"+strings.Repeat("-", 40)+"\n  (none)")
	assert.Contains(t, out, "WORK EXPERIENCE\n"+strings.Repeat("-", 40)+"\n  (none)")
	assert.Equal(t, 3, strings.Count(out, "(none)"))
}

func TestFilePrinter_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resume.txt")
	dest, err := FilePrinter{Path: path}.Print(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, path, dest)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "JANE DOE")
}

func TestWriterPrinter(t *testing.T) {
	var sb strings.Builder
	dest, err := WriterPrinter{W: &sb, Name: "stdout"}.Print(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, "stdout", dest)
	assert.Contains(t, sb.String(), "Go, SQL")
}
