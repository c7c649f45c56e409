package main

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const pageTitle = "Linear factors of random polynomials"

func renderCharts(w io.Writer, rows []row) error {
	page := components.NewPage().SetPageTitle(pageTitle)

	primes := make([]string, 0, len(rows))
	means := make([]opts.LineData, 0, len(rows))
	for _, r := range rows {
		primes = append(primes, strconv.FormatUint(r.P, 10))
		means = append(means, opts.LineData{Value: r.Mean})
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mean roots per prime"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "p"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "roots", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)
	line.SetXAxis(primes).AddSeries("mean", means)

	hist := mergeHistograms(rows)
	counts := make([]string, len(hist))
	bars := make([]opts.BarData, len(hist))
	for k, n := range hist {
		counts[k] = strconv.Itoa(k)
		bars[k] = opts.BarData{Value: n}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Root count distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "roots"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "samples", Type: "value"}),
	)
	bar.SetXAxis(counts).AddSeries("samples", bars)

	page.AddCharts(line, bar)
	return page.Render(w)
}
