package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/config"
	"github.com/alexisbeaulieu97/chartkit/internal/logger"
	"github.com/alexisbeaulieu97/chartkit/internal/ui"
	"github.com/alexisbeaulieu97/chartkit/internal/ui/components"
)

const modelCacheSize = 64

// loadModels loads the document at path and builds one view-model per chart.
func loadModels(path string, log *logger.Logger) (*config.Document, []any, error) {
	doc, err := config.Load(path, log)
	if err != nil {
		return nil, nil, err
	}

	cache := chart.NewCache(modelCacheSize, chart.WithCacheLogger(log))
	models := make([]any, 0, len(doc.Charts))
	for _, c := range doc.Charts {
		model, err := buildModel(cache, c)
		if err != nil {
			return nil, nil, fmt.Errorf("chart %q: %w", c.Title(), err)
		}
		models = append(models, model)
	}

	log.WithFields(map[string]any{
		"path":   path,
		"charts": len(models),
		"cached": cache.Stats().Hits,
	}).Debug("chart document loaded")

	return doc, models, nil
}

func buildModel(cache *chart.Cache, c config.Chart) (any, error) {
	switch c.Kind {
	case config.KindBar:
		props, err := c.BarProps()
		if err != nil {
			return nil, err
		}
		return cache.BarChart(props), nil
	case config.KindPie:
		props, err := c.PieProps()
		if err != nil {
			return nil, err
		}
		return cache.PieChart(props), nil
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", c.Kind)
	}
}

func chartComponent(model any, table bool) ui.Renderable {
	switch m := model.(type) {
	case chart.BarChartModel:
		return components.NewBarChart(m).WithTable(table)
	case chart.PieChartModel:
		return components.NewPieChart(m).WithTable(table)
	default:
		return components.NewText(fmt.Sprintf("unsupported chart model %T", model))
	}
}

func modelLabel(model any) string {
	switch m := model.(type) {
	case chart.BarChartModel:
		return m.AriaLabel
	case chart.PieChartModel:
		return m.AriaLabel
	default:
		return ""
	}
}
