package gcircle

// Numeric policy defaults.
const (
	// DefaultCollinearEpsilon bounds the absolute cross product below which
	// three sampled images are taken to lie on a line.
	DefaultCollinearEpsilon = 1e-8

	// DefaultDegenerateEpsilon bounds the circumcentre weight sum, relative
	// to (|ab|² + |bc|² + |ca|²)², below which FromThreePoints reports
	// ErrCollinear. The ratio equals (16·area²)/(Σ side²)², so it is
	// scale-free.
	DefaultDegenerateEpsilon = 1e-14
)

// Tolerance carries the thresholds used when rebuilding shapes from samples.
// The zero value is not useful; start from DefaultTolerance.
type Tolerance struct {
	Collinear  float64
	Degenerate float64
}

// DefaultTolerance returns the package defaults.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Collinear:  DefaultCollinearEpsilon,
		Degenerate: DefaultDegenerateEpsilon,
	}
}
