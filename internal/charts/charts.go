// Package charts renders the dashboard charts: the peak-temperature history
// as an interactive HTML page and a dataset's evolution as a PNG.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"thermal_sentinel/internal/models"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

const (
	historyTimeLayout = "15:04:05"

	evolutionWidth  = 8 * vg.Inch
	evolutionHeight = 4 * vg.Inch
)

var (
	maxLineColor = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	avgLineColor = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
)

// HistoryHTML writes the peak-temperature line chart with the alert
// threshold marked. An empty history still renders an empty chart.
func HistoryHTML(w io.Writer, history []models.HistoryPoint, threshold float64) error {
	xs := make([]string, 0, len(history))
	ys := make([]opts.LineData, 0, len(history))
	for _, p := range history {
		xs = append(xs, p.Time.Format(historyTimeLayout))
		ys = append(ys, opts.LineData{Value: p.Temp})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Peak temperature", Theme: "dark", Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Peak temperature", Subtitle: fmt.Sprintf("last %d alerts", len(history))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "°C", NameLocation: "middle", NameGap: 35}),
	)
	line.SetXAxis(xs).AddSeries("max temp", ys,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "alert threshold", YAxis: threshold}),
	)
	return line.Render(w)
}

// EvolutionPNG writes the per-frame max and average temperature lines.
func EvolutionPNG(w io.Writer, dataset string, points []models.EvolutionPoint) error {
	if len(points) == 0 {
		return ErrNoData
	}

	maxPts := make(plotter.XYs, 0, len(points))
	avgPts := make(plotter.XYs, 0, len(points))
	for _, p := range points {
		maxPts = append(maxPts, plotter.XY{X: float64(p.FrameIndex), Y: p.MaxTemp})
		avgPts = append(avgPts, plotter.XY{X: float64(p.FrameIndex), Y: p.AvgTemp})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - temperature evolution", dataset)
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Temperature (°C)"
	p.Add(plotter.NewGrid())

	maxLine, err := plotter.NewLine(maxPts)
	if err != nil {
		return fmt.Errorf("max line: %w", err)
	}
	maxLine.Color = maxLineColor
	maxLine.Width = vg.Points(1.5)

	avgLine, err := plotter.NewLine(avgPts)
	if err != nil {
		return fmt.Errorf("avg line: %w", err)
	}
	avgLine.Color = avgLineColor
	avgLine.Width = vg.Points(1)

	p.Add(maxLine, avgLine)
	p.Legend.Add("max", maxLine)
	p.Legend.Add("avg", avgLine)
	p.Legend.Top = true

	wt, err := p.WriterTo(evolutionWidth, evolutionHeight, "png")
	if err != nil {
		return fmt.Errorf("png writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
