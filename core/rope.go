package core

// Rope is a fixed-length distance constraint between two points
// RestLength is captured at creation and never recomputed; zero is legal
type Rope struct {
	A, B       PointID
	RestLength float64
}

// Touches reports whether id is one of the rope endpoints
func (r Rope) Touches(id PointID) bool {
	return r.A == id || r.B == id
}
