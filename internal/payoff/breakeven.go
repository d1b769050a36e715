package payoff

// Breakevens scans a payoff curve over an ascending price grid and returns
// the zero-crossing prices by linear interpolation between adjacent grid
// points, in ascending order. An empty result means the curve never crosses
// zero. Precision is bounded by the grid spacing; this is not exact
// root-finding.
func Breakevens(grid, curve []float64) []float64 {
	n := len(grid)
	if len(curve) < n {
		n = len(curve)
	}

	var points []float64
	for i := 0; i+1 < n; i++ {
		y0, y1 := curve[i], curve[i+1]
		if sign(y0) == sign(y1) {
			continue
		}
		x0, x1 := grid[i], grid[i+1]
		if y1 == y0 {
			// Flat segment with a sign change cannot occur for
			// piecewise-linear payoffs; fall back to the left edge.
			points = append(points, x0)
			continue
		}
		points = append(points, x0-y0*(x1-x0)/(y1-y0))
	}
	return points
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
