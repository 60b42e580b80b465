/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/techcare/dashboard/patientapi"
)

// Chart configuration.
const (
	ChartID             = "bloodPressureChart"
	ChartYMin           = 60
	ChartYMax           = 180
	ChartYStep          = 20
	ChartAnimationMS    = 1500
	SystolicColor       = "#ec4899"
	DiastolicColor      = "#8b5cf6"
	systolicAreaColor   = "rgba(236, 72, 153, 0.1)"
	diastolicAreaColor  = "rgba(139, 92, 246, 0.1)"
	tooltipValueSuffix  = " mmHg"
	chartAnimationEase  = "quarticInOut"
	chartSeriesSystolic = "Systolic"
	chartSeriesDiastole = "Diastolic"
)

// Point is one month of the blood pressure chart.
type Point struct {
	Month     string
	Systolic  int
	Diastolic int
}

// fallbackSeries keeps the chart populated when a patient has no history.
var fallbackSeries = []Point{
	{Month: "Oct 2023", Systolic: 140, Diastolic: 90},
	{Month: "Nov 2023", Systolic: 150, Diastolic: 95},
	{Month: "Dec 2023", Systolic: 160, Diastolic: 110},
	{Month: "Jan 2024", Systolic: 145, Diastolic: 85},
	{Month: "Feb 2024", Systolic: 155, Diastolic: 100},
	{Month: "Mar 2024", Systolic: 160, Diastolic: 78},
}

// FallbackSeries returns a copy of the series charted for an empty history.
func FallbackSeries() []Point {
	return append([]Point(nil), fallbackSeries...)
}

// BloodPressureSeries maps a diagnosis history onto chart points unchanged.
// An empty history yields the fallback series.
func BloodPressureSeries(history []patientapi.DiagnosisReading) []Point {
	if len(history) == 0 {
		return FallbackSeries()
	}

	points := make([]Point, 0, len(history))
	for _, r := range history {
		points = append(points, Point{Month: r.Month, Systolic: r.Systolic, Diastolic: r.Diastolic})
	}

	return points
}

// ChartSnippet is a rendered chart ready to embed in a page.
type ChartSnippet struct {
	Element template.HTML
	Script  template.HTML
	Assets  []string
}

// NewBloodPressureChart builds the two-series line chart. The y-axis range
// is fixed; values outside it are clipped by ECharts.
func NewBloodPressureChart(points []Point) *charts.Line {
	months := make([]string, 0, len(points))
	systolic := make([]opts.LineData, 0, len(points))
	diastolic := make([]opts.LineData, 0, len(points))

	for _, p := range points {
		months = append(months, p.Month)
		systolic = append(systolic, opts.LineData{Value: p.Systolic})
		diastolic = append(diastolic, opts.LineData{Value: p.Diastolic})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: ChartID,
			Width:   "100%",
			Height:  "300px",
		}),
		charts.WithColorsOpts(opts.Colors{SystolicColor, DiastolicColor}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:           opts.Bool(true),
			Trigger:        "axis",
			ValueFormatter: opts.FuncOpts("function (value) { return value + '" + tooltipValueSuffix + "'; }"),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:        "value",
			Min:         ChartYMin,
			Max:         ChartYMax,
			SplitNumber: (ChartYMax - ChartYMin) / ChartYStep,
		}),
	)

	line.SetXAxis(months).
		AddSeries(chartSeriesSystolic, systolic, seriesOpts(SystolicColor, systolicAreaColor)...).
		AddSeries(chartSeriesDiastole, diastolic, seriesOpts(DiastolicColor, diastolicAreaColor)...)

	return line
}

func seriesOpts(color, area string) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
			SymbolSize: 12,
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: color,
			Width: 3,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: color,
		}),
		charts.WithAreaStyleOpts(opts.AreaStyle{
			Color: area,
		}),
		charts.WithAnimationOpts(opts.Animation{
			Animation:         opts.Bool(true),
			AnimationDuration: ChartAnimationMS,
			AnimationEasing:   chartAnimationEase,
		}),
	}
}

// RenderChart renders the chart as an element and script pair for
// embedding in the dashboard template.
func RenderChart(points []Point) ChartSnippet {
	line := NewBloodPressureChart(points)
	snippet := line.RenderSnippet()

	return ChartSnippet{
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
		Assets:  append([]string(nil), line.JSAssets.Values...),
	}
}

// WriteChartPage renders the chart as a standalone HTML page.
func WriteChartPage(w io.Writer, points []Point) error {
	line := NewBloodPressureChart(points)
	line.PageTitle = "Blood Pressure"

	return line.Render(w)
}
