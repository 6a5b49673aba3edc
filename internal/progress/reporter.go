// Package progress plays the headline counter animations in a terminal.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ziadkadry99/oceanai/internal/effects"
)

// Reporter shows one counter climbing towards its target.
type Reporter interface {
	Start(stat effects.Stat)
	Update(value int64)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewCIReporter(w)
	}
	return &TerminalReporter{w: w}
}

// Play feeds frames to r at the given interval. It stops early when ctx
// is cancelled and still finishes the reporter.
func Play(ctx context.Context, r Reporter, stat effects.Stat, frames []int64, interval time.Duration) error {
	r.Start(stat)
	defer r.Finish()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i, v := range frames {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		r.Update(v)
	}
	return nil
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w    io.Writer
	stat effects.Stat
	bar  *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(stat effects.Stat) {
	r.stat = stat
	r.bar = progressbar.NewOptions64(stat.Target,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(stat.Label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(0),
	)
}

func (r *TerminalReporter) Update(value int64) {
	if r.bar != nil {
		r.bar.Describe(fmt.Sprintf("%-24s %s", r.stat.Label, effects.FormatCount(value)))
		_ = r.bar.Set64(value)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(r.w)
	}
}

// CIReporter prints only the settled value of each counter.
type CIReporter struct {
	w    io.Writer
	stat effects.Stat
	last int64
}

// NewCIReporter creates a reporter that writes one line per counter to w.
func NewCIReporter(w io.Writer) *CIReporter {
	return &CIReporter{w: w}
}

func (r *CIReporter) Start(stat effects.Stat) {
	r.stat = stat
	r.last = 0
}

func (r *CIReporter) Update(value int64) {
	r.last = value
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.w, "%s: %s%s\n", r.stat.Label, effects.FormatCount(r.last), r.stat.Suffix)
}
