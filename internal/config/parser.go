package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/logger"
	chartkiterrors "github.com/alexisbeaulieu97/chartkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, parses and validates a chart document from disk.
// Non-strict charts that mix point shapes are accepted and logged as warnings.
func Load(path string, log *logger.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chartkiterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data, log)
}

// Parse decodes and validates a chart document held in memory.
func Parse(path string, data []byte, log *logger.Logger) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, chartkiterrors.NewParseError(path, extractLine(err), err)
	}
	if len(doc.Charts) == 0 {
		return nil, chartkiterrors.NewParseError(path, 0, errors.New("document is empty"))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	for _, index := range MixedShapeCharts(&doc) {
		log.WithFields(map[string]any{
			"path":  path,
			"chart": doc.Charts[index].AriaLabel,
		}).Warn("chart mixes simple and grouped points; rendering as simple data")
	}

	return &doc, nil
}

// MixedShapeCharts returns the indexes of charts whose points mix shapes.
func MixedShapeCharts(doc *Document) []int {
	if doc == nil {
		return nil
	}
	var mixed []int
	for i, c := range doc.Charts {
		if errors.Is(chart.ValidatePoints(c.ChartPoints()), chart.ErrMixedPointShapes) {
			mixed = append(mixed, i)
		}
	}
	return mixed
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
