// Package render turns a resume document into printable plain text.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Makepad-fr/resumeform/internal/model"
)

const resumeTemplate = `{{ upper .PersonalInfo.FullName | orDash }}
{{ with .PersonalInfo.Email }}{{ . }}{{ end }}{{ if and .PersonalInfo.Email .PersonalInfo.Phone }} | {{ end }}{{ with .PersonalInfo.Phone }}{{ . }}{{ end }}
{{ with .PersonalInfo.Address }}{{ . }}
{{ end }}
EDUCATION
{{ rule }}
{{- range .Education }}
- {{ .School | orDash }}{{ with .Degree }}, {{ . }}{{ end }}{{ with .Year }} ({{ . }}){{ end }}
{{- else }}
  (none)
{{- end }}

WORK EXPERIENCE
{{ rule }}
{{- range .Experience }}
- {{ .Position | orDash }}{{ with .Company }} at {{ . }}{{ end }}{{ with .Duration }} [{{ . }}]{{ end }}
{{- with .Description }}
  {{ indent . }}
{{- end }}
{{- else }}
  (none)
{{- end }}

SKILLS
{{ rule }}
{{ if .Skills }}{{ join .Skills ", " }}{{ else }}  (none){{ end }}
`

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"join":  strings.Join,
	"rule":  func() string { return strings.Repeat("-", 40) },
	"orDash": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	},
	"indent": func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n  ")
	},
}

var tmpl = template.Must(template.New("resume").Funcs(funcs).Parse(resumeTemplate))

// TemplateError represents a failure executing the resume template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Text renders doc as a plain-text resume.
func Text(w io.Writer, doc model.ResumeDocument) error {
	if err := tmpl.Execute(w, doc.Normalized()); err != nil {
		return &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return nil
}

// FilePrinter writes the rendered resume to a fixed path, replacing it.
type FilePrinter struct {
	Path string
}

func (p FilePrinter) Print(doc model.ResumeDocument) (string, error) {
	var sb strings.Builder
	if err := Text(&sb, doc); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(p.Path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p.Path, nil
}

// WriterPrinter renders to an open writer, e.g. stdout.
type WriterPrinter struct {
	W    io.Writer
	Name string
}

func (p WriterPrinter) Print(doc model.ResumeDocument) (string, error) {
	if err := Text(p.W, doc); err != nil {
		return "", err
	}
	return p.Name, nil
}
