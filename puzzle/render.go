package puzzle

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes one line per result:
//
//	Day 04 (Ceres Search) part 1: 18
//
// Values are green, errors red and missing parts yellow when colorize is set.
// It returns the number of failed results.
func Render(w io.Writer, results []Result, colorize bool) (int, error) {
	value := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed)
	skip := color.New(color.FgYellow)
	label := color.New(color.FgCyan)
	for _, c := range []*color.Color{value, fail, skip, label} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	failed := 0
	for _, r := range results {
		head := label.Sprintf("Day %02d", r.Day)
		if r.Title != "" {
			head += " (" + r.Title + ")"
		}
		var body string
		switch {
		case errors.Is(r.Err, ErrNoPart):
			body = skip.Sprint("not implemented")
		case r.Err != nil:
			failed++
			body = fail.Sprintf("error: %v", r.Err)
		default:
			body = value.Sprint(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%s part %d: %s\n", head, r.Part, body); err != nil {
			return failed, err
		}
	}

	return failed, nil
}
