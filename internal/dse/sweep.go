package dse

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/akozlova/debyecalc/internal/lattice"
)

// Sweep describes the sampled q range [Start, End) with spacing Step.
type Sweep struct {
	Start float64 // [1/length unit]
	End   float64
	Step  float64
}

// Len is the sample count floor((End−Start)/Step). A non-positive step
// or an end at or below the start yields an empty sweep.
func (s Sweep) Len() int {
	if s.Step <= 0 || s.End <= s.Start {
		return 0
	}
	return int((s.End - s.Start) / s.Step)
}

// Values lists the samples qᵢ = Start + i·Step, i = 0 … Len()−1.
func (s Sweep) Values() []float64 {
	q := make([]float64, s.Len())
	for i := range q {
		q[i] = s.Start + float64(i)*s.Step
	}
	return q
}

type Strategy string

const (
	// StrategyDirect recomputes every pair distance at every q sample.
	StrategyDirect Strategy = "direct"
	// StrategyMatrix computes the pair distance matrix once and reuses
	// it across the whole sweep.
	StrategyMatrix Strategy = "matrix"
)

// ParseStrategy maps a config string to a Strategy; the empty string
// selects the matrix strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyMatrix, nil
	case StrategyDirect, StrategyMatrix:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q: supported strategies are %q and %q", s, StrategyDirect, StrategyMatrix)
}

// Options selects the evaluation strategy and the number of worker
// goroutines splitting the q samples. Threads <= 0 uses NumCPU.
type Options struct {
	Strategy Strategy
	Threads  int
}

// EvaluateSweep computes the intensity curve for the sweep, one value
// per q sample in sweep order. Both strategies honor the same zero
// handling and produce equal curves up to summation order.
func EvaluateSweep(points []lattice.Point, s Sweep, o Options) []float64 {
	q := s.Values()
	if o.Strategy == StrategyDirect {
		return mapOverQ(q, o.Threads, func(qi float64) float64 {
			return EvaluateSingle(points, qi)
		})
	}
	return sweepMatrix(points, q, o.Threads)
}

func sweepMatrix(points []lattice.Point, q []float64, threads int) []float64 {
	if len(points) == 0 {
		return make([]float64, len(q))
	}
	// Row-major walk over the cached pair distances keeps the per-q
	// summation order fixed regardless of thread count.
	distances := DistanceMatrix(points).RawMatrix().Data
	return mapOverQ(q, threads, func(qi float64) float64 {
		intensity := 0.
		for _, d := range distances {
			intensity += sinc(qi, d)
		}
		return intensity
	})
}

// mapOverQ fills curve[i] = intensityAt(q[i]) using a pool of workers.
// Every output index is written by exactly one worker, so no result
// ever depends on scheduling.
func mapOverQ(q []float64, threads int, intensityAt func(float64) float64) []float64 {
	curve := make([]float64, len(q))
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(q) {
		threads = len(q)
	}
	if threads <= 1 {
		for i := range q {
			curve[i] = intensityAt(q[i])
		}
		return curve
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				curve[i] = intensityAt(q[i])
			}
		}()
	}
	for i := range q {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return curve
}
