package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chartkit/internal/config"
	"github.com/alexisbeaulieu97/chartkit/internal/logger"
	"github.com/alexisbeaulieu97/chartkit/internal/render"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
	chartkiterrors "github.com/alexisbeaulieu97/chartkit/pkg/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type renderOptions struct {
	DocumentPath string
	SVGDir       string
	Output       string
	Width        int
	Theme        string
	Table        bool
}

type chartOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Model any    `json:"model"`
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <chart-document>",
		Short: "Render every chart in a document",
		Long: `Render draws each chart of the document to stdout using terminal
components, or prints the normalized view-models as JSON. With --svg, one SVG
file per chart is also written into the given directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocumentPath = args[0]
			log, err := root.newLogger(cmd, "render")
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), opts, log)
		},
	}

	cmd.Flags().StringVar(&opts.SVGDir, "svg", "", "Write one SVG file per chart into this directory")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text or json")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Render width in columns (defaults to the terminal width)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "light", "Colour theme: light or dark")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "Append the accessible data table to each chart")

	return cmd
}

func runRender(out io.Writer, opts renderOptions, log *logger.Logger) error {
	if err := validateDocumentPath(opts.DocumentPath); err != nil {
		return err
	}
	if opts.Output != outputText && opts.Output != outputJSON {
		return fmt.Errorf("invalid --output %q: expected text or json", opts.Output)
	}
	theme, err := themeFlag(opts.Theme)
	if err != nil {
		return err
	}

	doc, models, err := loadModels(opts.DocumentPath, log)
	if err != nil {
		return err
	}

	if opts.SVGDir != "" {
		if err := writeSVGs(opts.SVGDir, models, log); err != nil {
			return err
		}
	}

	if opts.Output == outputJSON {
		return printJSONOutput(out, doc, models)
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth(out)
	}
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(width)

	stack := components.VStack().WithGap(2)
	for _, model := range models {
		stack.Add(chartComponent(model, opts.Table))
	}
	fmt.Fprintln(out, stack.ViewWithContext(ctx))
	return nil
}

func printJSONOutput(out io.Writer, doc *config.Document, models []any) error {
	charts := make([]chartOutput, 0, len(models))
	for i, model := range models {
		charts = append(charts, chartOutput{
			Index: i + 1,
			Kind:  string(doc.Charts[i].Kind),
			Model: model,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{"charts": charts})
}

// writeSVGs writes one file per chart into dir. Charts with nothing to draw
// are skipped with a warning.
func writeSVGs(dir string, models []any, log *logger.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create svg dir: %w", err)
	}

	for i, model := range models {
		label := modelLabel(model)
		chartLog := log.ForChart(label)

		var buf bytes.Buffer
		if err := render.SVG(&buf, model, render.DefaultOptions); err != nil {
			if errors.Is(err, render.ErrEmptyChart) || errors.Is(err, render.ErrNoVisibleData) {
				chartLog.Warn("skipping svg: " + err.Error())
				continue
			}
			return chartkiterrors.NewRenderError(label, "svg", err)
		}

		path := filepath.Join(dir, render.FileName(i, label))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return chartkiterrors.NewRenderError(label, "svg", err)
		}
		chartLog.With("path", path).Info("wrote svg")
	}
	return nil
}
