package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chartkit/internal/config"
	"github.com/alexisbeaulieu97/chartkit/internal/logger"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <chart-document>",
		Short: "Check a chart document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd, "validate")
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), args[0], log)
		},
	}

	return cmd
}

func runValidate(out io.Writer, path string, log *logger.Logger) error {
	if err := validateDocumentPath(path); err != nil {
		return err
	}

	doc, err := config.Load(path, log)
	if err != nil {
		return err
	}

	for _, index := range config.MixedShapeCharts(doc) {
		fmt.Fprintf(out, "warning: chart %d %q mixes simple and grouped points\n", index+1, doc.Charts[index].Title())
	}
	fmt.Fprintf(out, "✓ %s: %d chart(s) valid\n", path, len(doc.Charts))
	return nil
}
