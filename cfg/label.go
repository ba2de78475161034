package cfg

import "fmt"

// labelKind distinguishes the three Label variants of spec.md §3.
type labelKind int

const (
	kindEntry labelKind = iota
	kindPoint
	kindExit
)

// Label identifies a node of the control flow graph: the unique Entry node
// (byte index 0), an interior Point(i) for i > 0, or the unique Exit sink.
// Labels have a total order: Entry < Point(i) < Exit, and Point(i) < Point(j)
// iff i < j (spec.md §3). The zero value is not a valid Label; always
// construct one with EntryLabel, PointLabel or ExitLabel.
type Label struct {
	kind  labelKind
	point int
}

// EntryLabel returns the unique Entry label.
func EntryLabel() Label { return Label{kind: kindEntry} }

// ExitLabel returns the unique Exit label.
func ExitLabel() Label { return Label{kind: kindExit} }

// PointLabel returns the label for interior byte index i. i must be > 0;
// use LabelOf to get the correct label (Entry or Point) for an arbitrary
// byte index.
func PointLabel(i int) Label { return Label{kind: kindPoint, point: i} }

// LabelOf implements the constructor rule of spec.md §3:
// label_of(0) = Entry, label_of(i) = Point(i) for i > 0.
func LabelOf(i int) Label {
	if i == 0 {
		return EntryLabel()
	}
	return PointLabel(i)
}

// IsEntry, IsExit and IsPoint report which variant l is.
func (l Label) IsEntry() bool { return l.kind == kindEntry }
func (l Label) IsExit() bool  { return l.kind == kindExit }
func (l Label) IsPoint() bool { return l.kind == kindPoint }

// Point returns the byte index of a Point label. It panics if l is not a
// Point label; callers should guard with IsPoint first.
func (l Label) Point() int {
	if l.kind != kindPoint {
		panic("cfg: Point called on non-Point label")
	}
	return l.point
}

// Less implements the total order on labels described in spec.md §3.
func (l Label) Less(other Label) bool {
	if l.kind != other.kind {
		return l.kind < other.kind
	}
	if l.kind == kindPoint {
		return l.point < other.point
	}
	return false
}

// Equal reports whether l and other denote the same node.
func (l Label) Equal(other Label) bool {
	return l.kind == other.kind && l.point == other.point
}

func (l Label) String() string {
	switch l.kind {
	case kindEntry:
		return "Entry"
	case kindExit:
		return "Exit"
	default:
		return fmt.Sprintf("Point(%d)", l.point)
	}
}
