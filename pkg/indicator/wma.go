package indicator

import (
	"github.com/quantstream/quantstream/pkg/datatype/floats"
)

// WMA is the linearly weighted moving average: the most recent value in
// the window carries weight window, the oldest weight 1.
type WMA struct {
	Window int

	rawValues floats.Slice
	value     float64
	count     int
}

func NewWMA(window int) *WMA {
	return &WMA{Window: window}
}

func (inc *WMA) Update(value float64) {
	inc.rawValues.Push(value)
	inc.rawValues = inc.rawValues.Truncate(inc.Window)
	inc.count++

	var weighted, norm float64
	for i, v := range inc.rawValues {
		w := float64(i + 1)
		weighted += w * v
		norm += w
	}

	inc.value = weighted / norm
}

func (inc *WMA) Value() float64 {
	return inc.value
}

func (inc *WMA) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *WMA) Reset() {
	inc.rawValues = nil
	inc.value = 0.0
	inc.count = 0
}

var _ MovingAverage = (*WMA)(nil)
