package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chartkit/internal/logger"
	"github.com/alexisbeaulieu97/chartkit/internal/tui"
)

type inspectOptions struct {
	DocumentPath string
	Chart        int
	ExportDir    string
	Theme        string
}

// programRunner starts the inspector; tests replace it.
var programRunner = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <chart-document>",
		Short: "Explore one chart interactively",
		Long: `Inspect opens an interactive view of one chart. Use the arrow keys to move
focus between categories or slices, t to toggle the data table and s to export SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocumentPath = args[0]
			log, err := root.newLogger(cmd, "inspect")
			if err != nil {
				return err
			}
			return runInspect(opts, log)
		},
	}

	cmd.Flags().IntVar(&opts.Chart, "chart", 1, "Position of the chart in the document, starting at 1")
	cmd.Flags().StringVar(&opts.ExportDir, "svg", ".", "Directory SVG exports are written to")
	cmd.Flags().StringVar(&opts.Theme, "theme", "light", "Colour theme: light or dark")

	return cmd
}

func runInspect(opts inspectOptions, log *logger.Logger) error {
	if err := validateDocumentPath(opts.DocumentPath); err != nil {
		return err
	}
	theme, err := themeFlag(opts.Theme)
	if err != nil {
		return err
	}

	_, models, err := loadModels(opts.DocumentPath, log)
	if err != nil {
		return err
	}
	if opts.Chart < 1 || opts.Chart > len(models) {
		return fmt.Errorf("--chart %d out of range: document has %d chart(s)", opts.Chart, len(models))
	}

	index := opts.Chart - 1
	m, err := tui.New(tui.Options{
		Chart:     models[index],
		Index:     index,
		ExportDir: opts.ExportDir,
		Theme:     theme,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	log.ForChart(modelLabel(models[index])).Info("launching inspector")
	if err := programRunner(m); err != nil {
		log.Error(err, "inspector execution failed")
		return fmt.Errorf("failed to run inspector: %w", err)
	}
	return nil
}
