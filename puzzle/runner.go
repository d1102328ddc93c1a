package puzzle

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// InputSource supplies the raw input text for a day.
type InputSource interface {
	LoadDay(day int) (string, error)
}

// Result is the outcome of one part of one day.
type Result struct {
	Day     int
	Title   string
	Part    int
	Value   int
	Err     error
	Elapsed time.Duration
}

// Failed reports whether the part produced an error other than ErrNoPart.
func (r Result) Failed() bool {
	return r.Err != nil && !errors.Is(r.Err, ErrNoPart)
}

// Runner executes solvers over their inputs.
type Runner struct {
	Solvers *Registry
	Inputs  InputSource
	// Logger receives per-part diagnostics; nil disables logging.
	Logger *zap.Logger
	// Parallelism bounds how many days run at once; values below 1 mean 1.
	Parallelism int
}

// Run solves both parts of each requested day (all registered days when days
// is empty) and returns the results ordered by day, then part.
// A failing part is reported in its Result and does not stop other days.
// Run itself fails on an unknown day or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	if len(days) == 0 {
		days = r.Solvers.Days()
	}
	solvers := make([]Solver, 0, len(days))
	for _, d := range days {
		s, err := r.Solvers.Get(d)
		if err != nil {
			return nil, err
		}
		solvers = append(solvers, s)
	}

	log := r.logger().With(zap.String("run_id", uuid.NewString()))
	log.Debug("starting run", zap.Ints("days", days), zap.Int("parallelism", r.parallelism()))

	perDay := make([][]Result, len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism())
	for i, s := range solvers {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perDay[i] = r.runDay(log, s)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, 2*len(solvers))
	for _, rs := range perDay {
		results = append(results, rs...)
	}

	return results, nil
}

// runDay loads the input once and runs both parts against it.
func (r *Runner) runDay(log *zap.Logger, s Solver) []Result {
	log = log.With(zap.Int("day", s.Day()))
	input, err := r.Inputs.LoadDay(s.Day())
	if err != nil {
		log.Warn("input unavailable", zap.Error(err))
		return []Result{
			{Day: s.Day(), Title: s.Title(), Part: 1, Err: err},
			{Day: s.Day(), Title: s.Title(), Part: 2, Err: err},
		}
	}

	parts := []func(string) (int, error){s.Part1, s.Part2}
	out := make([]Result, 0, len(parts))
	for i, solve := range parts {
		start := time.Now()
		v, err := solve(input)
		res := Result{Day: s.Day(), Title: s.Title(), Part: i + 1, Value: v, Err: err, Elapsed: time.Since(start)}
		switch {
		case res.Failed():
			log.Error("part failed", zap.Int("part", res.Part), zap.Error(err))
		case err == nil:
			log.Debug("part solved", zap.Int("part", res.Part), zap.Int("value", v), zap.Duration("elapsed", res.Elapsed))
		}
		out = append(out, res)
	}

	return out
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

func (r *Runner) parallelism() int {
	if r.Parallelism < 1 {
		return 1
	}

	return r.Parallelism
}
