package models

// Roll represents a throw of two dice
type Roll struct {
	// Die1 is the value of the first die
	Die1 int

	// Die2 is the value of the second die
	Die2 int
}

// Sum is the total of both dice
func (r Roll) Sum() int {
	return r.Die1 + r.Die2
}

// IsDouble reports whether both dice show the same face
func (r Roll) IsDouble() bool {
	return r.Die1 == r.Die2
}
