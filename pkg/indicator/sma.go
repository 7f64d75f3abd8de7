package indicator

import (
	"github.com/quantstream/quantstream/pkg/datatype/floats"
)

// SMA is the rolling mean over a bounded window of raw values.
type SMA struct {
	Window int

	rawValues floats.Slice
	value     float64
	count     int
}

func NewSMA(window int) *SMA {
	return &SMA{Window: window}
}

func (inc *SMA) Update(value float64) {
	inc.rawValues.Push(value)
	inc.rawValues = inc.rawValues.Truncate(inc.Window)
	inc.value = inc.rawValues.Mean()
	inc.count++
}

func (inc *SMA) Value() float64 {
	return inc.value
}

func (inc *SMA) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *SMA) Reset() {
	inc.rawValues = nil
	inc.value = 0.0
	inc.count = 0
}

var _ MovingAverage = (*SMA)(nil)
