package main

import (
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/akozlova/debyecalc/internal/render"
)

type output struct {
	saveFlag   *bool
	fileSuffix string
	ext        string
	save       func(path, modelName string, q, intensity []float64) error
}

func newOutputs() map[string]output {
	return map[string]output{
		"Intensity curve": {
			saveFlag:   flag.Bool("csv", true, "save the intensity curve as CSV"),
			fileSuffix: "intensity",
			ext:        ".csv",
			save:       saveCurveCSV,
		},
		"Curve plot": {
			saveFlag:   flag.Bool("png", false, "save a PNG plot of the intensity curve"),
			fileSuffix: "curve",
			ext:        ".png",
			save: func(path, modelName string, q, intensity []float64) error {
				return render.SaveCurvePNG(path, modelName, q, intensity)
			},
		},
	}
}

func saveCurveCSV(path, _ string, q, intensity []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows := [][]string{{"q (A^-1)", "I(q)"}}
	for i := range q {
		rows = append(rows, []string{
			strconv.FormatFloat(q[i], 'f', -1, 64),
			strconv.FormatFloat(intensity[i], 'f', -1, 64),
		})
	}
	w := csv.NewWriter(file)
	w.WriteAll(rows)
	return w.Error()
}
