package builtin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/statepane/statepane/source"
)

// DemoName is the name of the demo source.
const DemoName = "demo"

// ErrDemo is the failure produced by the demo source.
var ErrDemo = errors.New("demo: requested failure")

// Demo produces synthetic results. Targets read OUTCOME[@LATENCY], where OUTCOME is "items",
// "items=N", "empty" or "error", and LATENCY is a duration such as 1.5s.
type Demo struct{}

func NewDemo() *Demo {
	return &Demo{}
}

func (*Demo) Name() string { return DemoName }
func (*Demo) ID() string   { return DemoName + " builtin" }

func (d *Demo) Load(ctx context.Context, target string) ([]*source.Item, error) {
	outcome, latency, err := parseDemoTarget(target)
	if err != nil {
		return nil, err
	}

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	name, arg, _ := strings.Cut(outcome, "=")

	switch name {
	case "error":
		return nil, ErrDemo
	case "empty":
		return nil, nil
	case "items":
		count := 12
		if arg != "" {
			if count, err = strconv.Atoi(arg); err != nil || count < 0 {
				return nil, fmt.Errorf("demo: invalid item count %q", arg)
			}
		}

		items := make([]*source.Item, count)
		for i := range items {
			items[i] = &source.Item{
				Title:       fmt.Sprintf("Item %d", i+1),
				Description: fmt.Sprintf("Loaded after %s", latency),
				URL:         fmt.Sprintf("https://example.com/items/%d", i+1),
				Source:      d,
			}
		}
		return source.Indexed(items), nil
	default:
		return nil, fmt.Errorf("demo: unknown outcome %q", name)
	}
}

func parseDemoTarget(target string) (outcome string, latency time.Duration, err error) {
	target = strings.TrimSpace(target)
	if target == "" {
		target = "items"
	}

	outcome, rawLatency, ok := strings.Cut(target, "@")
	if ok {
		latency, err = time.ParseDuration(rawLatency)
		if err != nil {
			return "", 0, fmt.Errorf("demo: invalid latency %q", rawLatency)
		}
	}

	return outcome, latency, nil
}
