package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/facette/natsort"

	"github.com/akozlova/debyecalc/internal/config"
	"github.com/akozlova/debyecalc/internal/dse"
	"github.com/akozlova/debyecalc/internal/lattice"
	"github.com/akozlova/debyecalc/internal/render"
	"github.com/akozlova/debyecalc/internal/utils"
)

func main() {
	outputs := newOutputs()
	var configFileNamePointer = flag.String("input", "crystals", "model configuration in toml format")
	var verbose = flag.Bool("v", false, "print curve statistics per model")
	var bench = flag.Bool("bench", false, "time both evaluation strategies and report their disagreement")
	var compareModels = flag.Bool("html", false, "save an HTML chart overlaying every model's curve")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")
	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}

	modelNames := make([]string, 0, len(cfg.Models))
	for modelName := range cfg.Models {
		modelNames = append(modelNames, modelName)
	}
	slices.SortFunc(modelNames, func(a, b string) int {
		if natsort.Compare(a, b) {
			return -1
		}
		return 1
	})

	var comparisonQ []float64
	comparison := map[string][]float64{}
	var comparisonOrder []string

	for _, modelName := range modelNames {
		fmt.Println("\n" + modelName)
		parameters := cfg.Models[modelName]
		if !parameters.CheckDefaults(modelName, &cfg, &meta) {
			continue
		}

		points, err := buildPoints(parameters)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		strategy, err := dse.ParseStrategy(parameters.Strategy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		sweep := dse.Sweep{Start: parameters.QStart, End: parameters.QEnd, Step: parameters.QStep}
		fmt.Printf("atoms: %d; q samples: %d\n", len(points), sweep.Len())

		q := sweep.Values()
		curve := dse.EvaluateSweep(points, sweep, dse.Options{Strategy: strategy, Threads: parameters.Threads})

		if *verbose && len(curve) > 0 {
			peak := utils.Argmax(curve)
			fmt.Printf("mean intensity: %g; peak I(q) = %g at q = %g\n", utils.Average(curve), curve[peak], q[peak])
			fmt.Printf("integrated intensity: %g\n", utils.TableIntegrate(curve, nil, sweep.Step))
		}
		if *bench {
			runBench(points, sweep, parameters.Threads)
		}

		for name, output := range outputs {
			if !*output.saveFlag {
				continue
			}
			path, err := utils.OutputPath(parameters.MakeDir, outputPath, modelName, output.fileSuffix, output.ext)
			if err != nil {
				fmt.Fprintln(os.Stderr, "unable to save "+name+": ", err)
				continue
			}
			if err := output.save(path, modelName, q, curve); err != nil {
				fmt.Fprintln(os.Stderr, "unable to save "+name+": ", err)
			} else {
				fmt.Println(name + " saved")
			}
		}

		if *compareModels {
			if comparisonQ == nil {
				comparisonQ = q
			}
			comparison[modelName] = curve
			comparisonOrder = append(comparisonOrder, modelName)
		}
	}

	if *compareModels && len(comparison) > 0 {
		path := outputPath + "comparison.html"
		if err := render.SaveComparisonHTML(path, comparisonQ, comparison, comparisonOrder); err != nil {
			fmt.Fprintln(os.Stderr, "unable to save comparison chart: ", err)
		} else {
			fmt.Println("Comparison chart saved to " + path)
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func buildPoints(parameters config.ModelParameters) ([]lattice.Point, error) {
	if parameters.PointsFile != "" {
		return utils.ReadPoints(parameters.PointsFile)
	}
	return lattice.Build(parameters.Shape, parameters.LatticeParam, parameters.Length)
}

// runBench evaluates the same sweep with both strategies and prints
// their timings and worst relative disagreement.
func runBench(points []lattice.Point, sweep dse.Sweep, threads int) {
	directStart := time.Now()
	direct := dse.EvaluateSweep(points, sweep, dse.Options{Strategy: dse.StrategyDirect, Threads: threads})
	directElapsed := time.Since(directStart)

	matrixStart := time.Now()
	precomputed := dse.EvaluateSweep(points, sweep, dse.Options{Strategy: dse.StrategyMatrix, Threads: threads})
	matrixElapsed := time.Since(matrixStart)

	maxRel := 0.
	for i := range direct {
		if direct[i] != 0 {
			maxRel = math.Max(maxRel, math.Abs((direct[i]-precomputed[i])/direct[i]))
		}
	}
	fmt.Printf("direct: %v; matrix: %v; max relative disagreement: %.3g\n", directElapsed, matrixElapsed, maxRel)
}
