package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/Makepad-fr/resumeform/internal/document"
	"github.com/Makepad-fr/resumeform/internal/model"
	"github.com/Makepad-fr/resumeform/internal/render"
	"github.com/Makepad-fr/resumeform/internal/store"
	"github.com/Makepad-fr/resumeform/internal/ui"
)

var errNoResume = errors.New("no saved resume; open the form and press ctrl+s first")

func newPrintCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the saved resume as text",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			doc, err := e.loadDocument()
			if err != nil {
				return err
			}
			if out == "" {
				return render.Text(cmd.OutOrStdout(), doc)
			}
			dest, err := render.FilePrinter{Path: out}.Print(doc)
			if err != nil {
				return fmt.Errorf("print: %w", err)
			}
			e.log.Debug("resume printed", "dest", dest)
			ui.OK("printed to " + dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the saved resume JSON",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			raw, err := e.rawDocument()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), gjson.Get(raw, "@pretty").Raw)
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete everything in storage",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := e.store.Clear(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			e.log.Info("storage cleared", "path", e.store.Path())
			ui.OK("storage cleared")
			return nil
		},
	}
}

func newWhereCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where the resume is stored",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.store.Path())
			return nil
		},
	}
}

func (e *env) rawDocument() (string, error) {
	raw, err := e.store.Get(document.StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", errNoResume
	}
	if err != nil {
		return "", fmt.Errorf("read storage: %w", err)
	}
	return raw, nil
}

func (e *env) loadDocument() (model.ResumeDocument, error) {
	raw, err := e.rawDocument()
	if err != nil {
		return model.ResumeDocument{}, err
	}
	doc, err := document.Decode(raw)
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("stored resume is unusable: %w", err)
	}
	return doc, nil
}
