package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ChartKind selects the chart a document entry describes.
type ChartKind string

const (
	KindBar ChartKind = "bar"
	KindPie ChartKind = "pie"
)

// PointKind values accepted in a point's kind field.
const (
	PointKindSimple  = "simple"
	PointKindGrouped = "grouped"
)

// Document is a chart document. It holds either a single chart at the top
// level or a list of charts under the charts key.
type Document struct {
	Charts []Chart `yaml:"charts" validate:"required,min=1,dive"`
}

// UnmarshalYAML accepts both the single-chart and the charts-list layouts.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if hasYAMLKey(value, "charts") {
		type rawDocument Document
		var raw rawDocument
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*d = Document(raw)
		return nil
	}

	var single Chart
	if err := value.Decode(&single); err != nil {
		return err
	}
	d.Charts = []Chart{single}
	return nil
}

// Chart is one chart entry of a document.
type Chart struct {
	Kind        ChartKind        `yaml:"kind" validate:"required,oneof=bar pie"`
	AriaLabel   string           `yaml:"aria_label" validate:"required"`
	XAxisLabel  string           `yaml:"x_axis_label,omitempty"`
	YAxisLabel  string           `yaml:"y_axis_label,omitempty"`
	Strict      bool             `yaml:"strict,omitempty"`
	Format      *FormatSpec      `yaml:"format,omitempty"`
	Groups      []GroupSpec      `yaml:"groups,omitempty" validate:"omitempty,unique=ID,dive"`
	Points      []PointSpec      `yaml:"points,omitempty" validate:"omitempty,dive"`
	Slices      []SliceSpec      `yaml:"slices,omitempty" validate:"omitempty,unique=ID,dive"`
	CenterLabel *CenterLabelSpec `yaml:"center_label,omitempty"`
}

// FormatSpec describes how values are displayed.
type FormatSpec struct {
	Style     string `yaml:"style,omitempty" validate:"omitempty,format_style"`
	Precision *int   `yaml:"precision,omitempty" validate:"omitempty,min=0,max=12"`
	Prefix    string `yaml:"prefix,omitempty"`
	Suffix    string `yaml:"suffix,omitempty"`
	Locale    string `yaml:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// GroupSpec is caller metadata for one bar series.
type GroupSpec struct {
	ID        string `yaml:"id" validate:"required"`
	Label     string `yaml:"label,omitempty"`
	Variant   string `yaml:"variant,omitempty" validate:"omitempty,variant"`
	TintIndex int    `yaml:"tint_index,omitempty" validate:"min=0,max=9"`
}

// PointSpec is a bar category. It is simple when it carries a value and
// grouped when it carries groups; an explicit kind overrides detection.
type PointSpec struct {
	Kind   string           `yaml:"kind,omitempty" validate:"omitempty,oneof=simple grouped"`
	Label  string           `yaml:"label" validate:"required"`
	Detail string           `yaml:"detail,omitempty"`
	Value  float64          `yaml:"value,omitempty" validate:"finite"`
	Groups []GroupValueSpec `yaml:"groups,omitempty" validate:"omitempty,dive"`

	hasValue  bool
	hasGroups bool
}

// UnmarshalYAML decodes a point and resolves its kind.
func (p *PointSpec) UnmarshalYAML(value *yaml.Node) error {
	type rawPoint PointSpec
	var raw rawPoint
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PointSpec(raw)
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	p.hasValue = hasYAMLKey(value, "value")
	p.hasGroups = hasYAMLKey(value, "groups")
	if p.Kind == "" {
		if p.hasGroups {
			p.Kind = PointKindGrouped
		} else {
			p.Kind = PointKindSimple
		}
	}
	return nil
}

// GroupValueSpec is one group's value inside a grouped point.
type GroupValueSpec struct {
	ID     string  `yaml:"id" validate:"required"`
	Value  float64 `yaml:"value" validate:"finite"`
	Detail string  `yaml:"detail,omitempty"`
}

// SliceSpec is one pie slice.
type SliceSpec struct {
	ID      string  `yaml:"id" validate:"required"`
	Label   string  `yaml:"label" validate:"required"`
	Value   float64 `yaml:"value" validate:"finite"`
	Detail  string  `yaml:"detail,omitempty"`
	Variant string  `yaml:"variant,omitempty" validate:"omitempty,variant"`
}

// CenterLabelSpec overrides the pie centre label.
type CenterLabelSpec struct {
	Value       string `yaml:"value" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if strings.EqualFold(node.Content[i].Value, key) {
			return true
		}
	}
	return false
}
