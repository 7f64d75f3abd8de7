package indicator

import (
	"github.com/quantstream/quantstream/pkg/types"
)

// Indicator is the lifecycle and event-handling contract implemented by
// every streaming indicator. Indicators consume one price event at a time
// and never re-scan history.
//
// Each variant decides which event kinds it consumes; unused handlers are
// intentional no-ops rather than errors.
type Indicator interface {
	// Name returns a stable identifier used for diagnostics and display.
	Name() string

	// HasInputs reports whether at least one update has been received
	// since construction or the last Reset.
	HasInputs() bool

	// IsInitialized reports whether enough inputs have been received for
	// the indicator value to be meaningful.
	IsInitialized() bool

	HandleQuoteTick(tick types.QuoteTick)
	HandleTradeTick(tick types.TradeTick)
	HandleBar(k types.KLine)

	// Reset returns the indicator to its pre-input numeric state while
	// preserving its configuration.
	Reset()
}

// MovingAverage smooths a scalar input stream into a single running value.
// Updates are amortized O(1).
type MovingAverage interface {
	// Update folds one new observation into the running average.
	Update(value float64)

	// Value returns the current smoothed value, 0.0 before any input.
	Value() float64

	IsInitialized() bool

	Reset()
}
