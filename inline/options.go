package inline

import (
	"io"
	"time"

	"github.com/statepane/statepane/source"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a single headless load.
type Options struct {
	Out    io.Writer
	Source source.Source
	Target string
	Json   bool

	Animate          bool
	ToLoadingDelay   time.Duration
	FromLoadingDelay time.Duration

	// Metrics receives transition metrics when set.
	Metrics prometheus.Registerer
}
