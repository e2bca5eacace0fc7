// Package inline loads a target once without the terminal UI and prints the outcome.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/metrics"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/viewstate"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ErrLoad is wrapped by the error returned when the target failed to load.
var ErrLoad = errors.New("load failed")

// recorder keeps applied transitions and forwards events to the next observer.
type recorder struct {
	start time.Time
	next  viewstate.Observer

	mu          sync.Mutex
	transitions []*Transition
}

func (r *recorder) Requested(target viewstate.Identity, delay time.Duration) {
	if r.next != nil {
		r.next.Requested(target, delay)
	}
}

func (r *recorder) Applied(from, to viewstate.Identity) {
	r.mu.Lock()
	r.transitions = append(r.transitions, &Transition{
		From:    string(viewstate.StateOf(from)),
		To:      string(viewstate.StateOf(to)),
		AfterMs: time.Since(r.start).Milliseconds(),
	})
	r.mu.Unlock()

	if r.next != nil {
		r.next.Applied(from, to)
	}
}

func (r *recorder) Finished(target viewstate.Identity, result viewstate.Result) {
	if r.next != nil {
		r.next.Finished(target, result)
	}
}

func (r *recorder) snapshot() []*Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Transition{}, r.transitions...)
}

// Run loads options.Target through a placeholder controller and writes the final state.
// It returns an error wrapping ErrLoad when the load fails, after the output is written.
func Run(ctx context.Context, options *Options) error {
	if options.Source == nil {
		return errors.New("source is not set")
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	rec := &recorder{start: time.Now()}
	if options.Metrics != nil {
		rec.next = metrics.NewRecorder(options.Metrics)
	}

	h := &host{}
	scheduler := viewstate.New(
		h,
		viewstate.WithObserver(rec),
		viewstate.WithToLoadingDelay(options.ToLoadingDelay),
		viewstate.WithFromLoadingDelay(options.FromLoadingDelay),
	)
	defer scheduler.Close()

	var items atomic.Int64
	controller := viewstate.NewController(scheduler, func() bool {
		return items.Load() > 0
	})
	controller.SetLoadingPanel(panel(viewstate.KeyLoading))
	controller.SetErrorPanel(panel(viewstate.KeyError))
	controller.SetEmptyPanel(panel(viewstate.KeyEmpty))

	runID := uuid.NewString()
	log.WithFields(log.Fields{
		"run":    runID,
		"source": options.Source.Name(),
		"target": options.Target,
	}).Info("inline: loading")

	controller.StartLoading(options.Animate, nil)

	loaded, loadErr := options.Source.Load(ctx, options.Target)
	loaded = source.Indexed(loaded)
	if loadErr == nil {
		items.Store(int64(len(loaded)))
	}

	settled := make(chan viewstate.Result, 1)
	controller.EndLoading(options.Animate, loadErr, func(r viewstate.Result) {
		settled <- r
	})

	select {
	case r := <-settled:
		log.Debugf("inline %s: settled with %s", runID, r)
	case <-ctx.Done():
		return ctx.Err()
	}

	output := &Output{
		RunID:       runID,
		Source:      options.Source.Name(),
		Target:      options.Target,
		State:       controller.CurrentState(),
		Items:       lo.Ternary(loaded == nil, []*source.Item{}, loaded),
		Transitions: rec.snapshot(),
	}
	if loadErr != nil {
		output.Error = loadErr.Error()
	}

	var err error
	if options.Json {
		err = writeJson(out, output)
	} else {
		err = writePlain(out, output, h.Visible())
	}
	if err != nil {
		return err
	}

	if loadErr != nil {
		return fmt.Errorf("%w: %w", ErrLoad, loadErr)
	}
	return nil
}

func writePlain(out io.Writer, output *Output, visible []string) error {
	for _, t := range output.Transitions {
		if _, err := fmt.Fprintf(out, "%6dms %s -> %s\n", t.AfterMs, t.From, t.To); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "state: %s\n", output.State); err != nil {
		return err
	}

	if len(visible) > 0 {
		if _, err := fmt.Fprintf(out, "visible: %v\n", visible); err != nil {
			return err
		}
	}

	for _, item := range output.Items {
		line := item.Label()
		if item.URL != "" {
			line += " " + item.URL
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
