package indicator

import "math"

// Hull is the Hull moving average:
// WMA(2*WMA(window/2) - WMA(window), sqrt(window)).
//
// Refer: https://alanhull.com/hull-moving-average
type Hull struct {
	Window int

	wma1   *WMA
	wma2   *WMA
	result *WMA
	count  int
}

func NewHull(window int) *Hull {
	half := window / 2
	if half < 1 {
		half = 1
	}

	sqrtWindow := int(math.Round(math.Sqrt(float64(window))))
	if sqrtWindow < 1 {
		sqrtWindow = 1
	}

	return &Hull{
		Window: window,
		wma1:   NewWMA(half),
		wma2:   NewWMA(window),
		result: NewWMA(sqrtWindow),
	}
}

func (inc *Hull) Update(value float64) {
	inc.wma1.Update(value)
	inc.wma2.Update(value)
	inc.result.Update(2*inc.wma1.Value() - inc.wma2.Value())
	inc.count++
}

func (inc *Hull) Value() float64 {
	return inc.result.Value()
}

func (inc *Hull) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *Hull) Reset() {
	inc.wma1.Reset()
	inc.wma2.Reset()
	inc.result.Reset()
	inc.count = 0
}

var _ MovingAverage = (*Hull)(nil)
