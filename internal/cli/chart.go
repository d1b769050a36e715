package cli

import (
	"fmt"
	"strings"
)

// Chart dimensions for the terminal payoff diagram.
const (
	chartWidth  = 64
	chartHeight = 15
)

// renderChart draws an ASCII payoff diagram of the curve over the grid.
// A horizontal axis marks zero P&L and a vertical marker shows spot.
func renderChart(output *Output, grid, curve []float64, spot float64) {
	if len(grid) < 2 || len(curve) < 2 {
		return
	}

	// Resample the curve to one value per chart column.
	cols := make([]float64, chartWidth)
	for c := 0; c < chartWidth; c++ {
		idx := c * (len(curve) - 1) / (chartWidth - 1)
		cols[c] = curve[idx]
	}

	hi, lo := curveExtremes(cols)
	if hi < 0 {
		hi = 0
	}
	if lo > 0 {
		lo = 0
	}
	if hi == lo {
		hi = lo + 1
	}

	rowOf := func(v float64) int {
		r := int(float64(chartHeight-1) * (hi - v) / (hi - lo))
		if r < 0 {
			r = 0
		}
		if r >= chartHeight {
			r = chartHeight - 1
		}
		return r
	}

	zeroRow := rowOf(0)
	spotCol := -1
	if spot >= grid[0] && spot <= grid[len(grid)-1] {
		spotCol = int(float64(chartWidth-1) * (spot - grid[0]) / (grid[len(grid)-1] - grid[0]))
	}

	canvas := make([][]rune, chartHeight)
	for r := range canvas {
		canvas[r] = []rune(strings.Repeat(" ", chartWidth))
	}
	for c := 0; c < chartWidth; c++ {
		if canvas[zeroRow][c] == ' ' {
			canvas[zeroRow][c] = '─'
		}
	}
	if spotCol >= 0 {
		for r := 0; r < chartHeight; r++ {
			canvas[r][spotCol] = '┊'
		}
	}
	for c := 0; c < chartWidth; c++ {
		r := rowOf(cols[c])
		if r == zeroRow {
			canvas[r][c] = '╳'
		} else {
			canvas[r][c] = '•'
		}
	}

	for r := 0; r < chartHeight; r++ {
		label := "        "
		switch r {
		case 0:
			label = fmt.Sprintf("%7.0f ", hi)
		case zeroRow:
			label = "      0 "
		case chartHeight - 1:
			label = fmt.Sprintf("%7.0f ", lo)
		}
		output.Printf("  %s│%s\n", label, string(canvas[r]))
	}

	output.Printf("  %8s└%s\n", "", strings.Repeat("─", chartWidth))
	left := fmt.Sprintf("%.0f", grid[0])
	right := fmt.Sprintf("%.0f", grid[len(grid)-1])
	pad := chartWidth - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	output.Printf("  %8s %s%s%s\n", "", left, strings.Repeat(" ", pad), right)
	if spotCol >= 0 {
		output.Dim("  %8s spot ┊ at %.0f", "", spot)
	}
}
