package indicator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/quantstream/quantstream/pkg/types"
)

// AverageTrueRange computes the Average True Range (ATR) across a rolling
// window: each bar's true range is fed into an exclusively owned moving
// average selected at construction time.
//
// With UsePrevious the true range is the classic three-term measure
// (high-low, |high-prevClose|, |low-prevClose|) reduced algebraically to
// max(prevClose, high) - min(low, prevClose); otherwise only the plain
// high-low range is used.
type AverageTrueRange struct {
	Period      int
	MAType      MovingAverageType
	UsePrevious bool

	// ValueFloor pins the reported value to a lower bound without
	// touching the underlying smoothing state. 0.0 disables the floor.
	ValueFloor float64

	value         float64
	count         int
	hasInputs     bool
	initialized   bool
	previousClose float64
	ma            MovingAverage
}

// NewAverageTrueRange constructs an ATR indicator. The period must be a
// positive integer.
func NewAverageTrueRange(period int, maType MovingAverageType, usePrevious bool, valueFloor float64) (*AverageTrueRange, error) {
	if period < 1 {
		return nil, errors.Errorf("invalid configuration: period must be a positive integer, got %d", period)
	}

	return &AverageTrueRange{
		Period:      period,
		MAType:      maType,
		UsePrevious: usePrevious,
		ValueFloor:  valueFloor,
		ma:          NewMovingAverage(maType, period),
	}, nil
}

// NewDefaultAverageTrueRange uses a simple moving average, includes the
// previous close in the true range and applies no floor.
func NewDefaultAverageTrueRange(period int) (*AverageTrueRange, error) {
	return NewAverageTrueRange(period, MovingAverageTypeSimple, true, 0.0)
}

// Update folds one high/low/close observation into the indicator.
// Degenerate candles (high < low) are accepted and produce a well-defined
// result; callers needing strict validation must check before calling.
func (inc *AverageTrueRange) Update(high, low, close float64) {
	if inc.UsePrevious {
		if !inc.hasInputs {
			// seed so the first true range reduces to the plain range
			inc.previousClose = close
		}

		inc.ma.Update(math.Max(inc.previousClose, high) - math.Min(low, inc.previousClose))
		inc.previousClose = close
	} else {
		inc.ma.Update(high - low)
	}

	inc.floorValue()
	inc.incrementCount()
}

// Value returns the current, possibly floored, ATR reading.
func (inc *AverageTrueRange) Value() float64 {
	return inc.value
}

// Count returns the number of updates received since the last reset.
func (inc *AverageTrueRange) Count() int {
	return inc.count
}

func (inc *AverageTrueRange) floorValue() {
	if inc.ValueFloor == 0.0 || inc.ValueFloor < inc.ma.Value() {
		inc.value = inc.ma.Value()
	} else {
		inc.value = inc.ValueFloor
	}
}

func (inc *AverageTrueRange) incrementCount() {
	inc.count++

	if !inc.initialized {
		inc.hasInputs = true
		if inc.count >= inc.Period {
			inc.initialized = true
		}
	}
}

func (inc *AverageTrueRange) Name() string {
	return "AverageTrueRange"
}

func (inc *AverageTrueRange) HasInputs() bool {
	return inc.hasInputs
}

func (inc *AverageTrueRange) IsInitialized() bool {
	return inc.initialized
}

func (inc *AverageTrueRange) HandleBar(k types.KLine) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *AverageTrueRange) HandleQuoteTick(tick types.QuoteTick) {
	// quote ticks carry no high/low/close, nothing to do
}

func (inc *AverageTrueRange) HandleTradeTick(tick types.TradeTick) {
	// trade ticks carry no high/low/close, nothing to do
}

// Reset returns the indicator to its pristine post-construction state.
// Configuration survives, accumulated state does not.
func (inc *AverageTrueRange) Reset() {
	inc.previousClose = 0.0
	inc.value = 0.0
	inc.count = 0
	inc.hasInputs = false
	inc.initialized = false
	inc.ma.Reset()
}

func (inc *AverageTrueRange) String() string {
	return fmt.Sprintf("%s(%d,%s,%v,%v)", inc.Name(), inc.Period, inc.MAType, inc.UsePrevious, inc.ValueFloor)
}

var _ Indicator = (*AverageTrueRange)(nil)
