package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// CurvePlot renders a single decay curve as a terminal chart.
func CurvePlot(w []float64, caption string) string {
	return asciigraph.Plot(w,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// CurvesPlot overlays several curves, e.g. draws from a prior.
func CurvesPlot(curves [][]float64, caption string) string {
	return asciigraph.PlotMany(curves,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// SeriesPlot renders spend and its adstocked version together.
func SeriesPlot(spend, adstocked []float64) string {
	return asciigraph.PlotMany([][]float64{spend, adstocked},
		asciigraph.Height(plotHeight+5),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("spend (1st series) vs adstocked (2nd series)"),
	)
}

// KernelCaption builds a plot caption from kernel summaries.
func KernelCaption(name string, halfLife int, meanLag float64) string {
	return fmt.Sprintf("%s kernel  half-life=%d  mean lag=%.2f", name, halfLife, meanLag)
}
