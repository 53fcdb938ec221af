package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	plotXAxisRotate = 45
	pieRadius       = "60%"
)

// RenderPlot writes the result as a standalone HTML page with a bar chart
// of violations per rule and a severity breakdown pie.
func RenderPlot(result Result, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Style Scan Report"

	page.AddCharts(
		violationsByRuleChart(result.Summary),
		severityPieChart(result.Summary),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render plot report: %w", err)
	}

	return nil
}

func violationsByRuleChart(summary Summary) *charts.Bar {
	rules, counts := RulesByCount(summary)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Violations by Rule",
			Subtitle: "Rules ordered by violation count",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: plotXAxisRotate, Interval: "0"},
		}),
	)

	data := make([]opts.BarData, len(counts))
	for i, count := range counts {
		data[i] = opts.BarData{Value: count}
	}

	bar.SetXAxis(rules)
	bar.AddSeries("Violations", data)

	return bar
}

func severityPieChart(summary Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Severity Breakdown"}),
	)

	pie.AddSeries("Severity", []opts.PieData{
		{Name: "Errors", Value: summary.Errors},
		{Name: "Warnings", Value: summary.Warnings},
	}, charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}))

	return pie
}
