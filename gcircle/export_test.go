package gcircle

// White-box bridges for gcircle_test.
var (
	// ExportedCollinear exposes the absolute collinearity test of ApplyMobius.
	ExportedCollinear = Tolerance.collinear
	// ExportedCollinearScaled exposes the scale-free test of InvertShape.
	ExportedCollinearScaled = Tolerance.collinearScaled
)
