package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SaveComparisonHTML overlays the intensity curves of several models in
// one interactive chart, series in the given order. All curves are
// plotted against the q axis of the first configured model.
func SaveComparisonHTML(path string, q []float64, curves map[string][]float64, order []string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Debye scattering curves", Width: "1200px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Debye scattering curves", Subtitle: fmt.Sprintf("models=%d samples=%d", len(curves), len(q))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "q (1/Å)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "I(q)"}),
	)

	labels := make([]string, len(q))
	for i := range q {
		labels[i] = strconv.FormatFloat(q[i], 'f', -1, 64)
	}
	line.SetXAxis(labels)
	for _, name := range order {
		curve := curves[name]
		data := make([]opts.LineData, len(curve))
		for i := range curve {
			data[i] = opts.LineData{Value: curve[i]}
		}
		line.AddSeries(name, data)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return line.Render(file)
}
