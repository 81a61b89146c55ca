package chart

// PointKind tags which shape a bar chart data point has.
type PointKind uint8

const (
	PointSimple PointKind = iota + 1
	PointGrouped
)

func (k PointKind) String() string {
	switch k {
	case PointSimple:
		return "simple"
	case PointGrouped:
		return "grouped"
	default:
		return "unknown"
	}
}

// Point is one bar chart category. It is either a SimplePoint or a GroupedPoint,
// held by value or by pointer; switch on Kind to handle both shapes.
type Point interface {
	Kind() PointKind
	PointLabel() string
	PointDetail() string
	// pointValue is the scalar of a simple point; zero for grouped points.
	pointValue() float64
	// pointGroups is the group values of a grouped point; nil for simple points.
	pointGroups() []GroupValue
}

// SimplePoint carries one scalar per category.
type SimplePoint struct {
	Label  string
	Value  float64
	Detail string
}

// GroupedPoint carries one scalar per group, drawn as a stacked bar.
type GroupedPoint struct {
	Label  string
	Detail string
	Groups []GroupValue
}

// GroupValue is a single group's contribution to a GroupedPoint.
type GroupValue struct {
	ID     string
	Value  float64
	Detail string
}

func (SimplePoint) Kind() PointKind           { return PointSimple }
func (p SimplePoint) PointLabel() string      { return p.Label }
func (p SimplePoint) PointDetail() string     { return p.Detail }
func (p SimplePoint) pointValue() float64     { return p.Value }
func (SimplePoint) pointGroups() []GroupValue { return nil }

func (GroupedPoint) Kind() PointKind             { return PointGrouped }
func (p GroupedPoint) PointLabel() string        { return p.Label }
func (p GroupedPoint) PointDetail() string       { return p.Detail }
func (GroupedPoint) pointValue() float64         { return 0 }
func (p GroupedPoint) pointGroups() []GroupValue { return p.Groups }

// present reports whether p holds a point. Typed nil pointers count as absent.
func present(p Point) bool {
	switch pt := p.(type) {
	case nil:
		return false
	case *SimplePoint:
		return pt != nil
	case *GroupedPoint:
		return pt != nil
	default:
		return true
	}
}

// findGroup returns the first group value with the given id.
func findGroup(groups []GroupValue, id string) (GroupValue, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return GroupValue{}, false
}
