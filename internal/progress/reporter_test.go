package progress

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ziadkadry99/oceanai/internal/effects"
)

type recorder struct {
	started  effects.Stat
	values   []int64
	finished bool
}

func (r *recorder) Start(stat effects.Stat) { r.started = stat }
func (r *recorder) Update(value int64)      { r.values = append(r.values, value) }
func (r *recorder) Finish()                 { r.finished = true }

func TestPlayFeedsEveryFrame(t *testing.T) {
	rec := &recorder{}
	stat := effects.Stat{Label: "Years of Data", Target: 25}
	frames := []int64{5, 10, 15, 20, 25}

	if err := Play(context.Background(), rec, stat, frames, time.Millisecond); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if rec.started != stat {
		t.Errorf("started with %+v", rec.started)
	}
	if len(rec.values) != len(frames) || rec.values[4] != 25 {
		t.Errorf("values = %v", rec.values)
	}
	if !rec.finished {
		t.Error("reporter not finished")
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Play(ctx, rec, effects.Stat{Label: "x", Target: 3}, []int64{1, 2, 3}, time.Hour)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(rec.values) != 1 || !rec.finished {
		t.Errorf("values = %v, finished = %v", rec.values, rec.finished)
	}
}

func TestCIReporterPrintsSettledValue(t *testing.T) {
	var buf bytes.Buffer
	r := NewCIReporter(&buf)
	r.Start(effects.Stat{Label: "Ocean Measurements", Target: 2500000, Suffix: "+"})
	r.Update(1000)
	r.Update(2500000)
	r.Finish()

	if got := buf.String(); got != "Ocean Measurements: 2,500,000+\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
