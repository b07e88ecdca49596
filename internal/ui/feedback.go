package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK and Fail; tests use it to capture feedback.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func OK(msg string) { fmt.Fprintln(stdout, Current().Success.Render("✔ "+msg)) }

func Fail(msg string) { fmt.Fprintln(stderr, Current().Error.Render("✖ "+msg)) }

func Muted(msg string) string { return Current().Muted.Render(msg) }
