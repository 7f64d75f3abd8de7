package indicator

// DEMA is the double exponential moving average, 2*EMA - EMA(EMA),
// which reduces the lag of a plain EWMA.
type DEMA struct {
	Window int

	ema1  *EWMA
	ema2  *EWMA
	value float64
	count int
}

func NewDEMA(window int) *DEMA {
	return &DEMA{
		Window: window,
		ema1:   NewEWMA(window),
		ema2:   NewEWMA(window),
	}
}

func (inc *DEMA) Update(value float64) {
	inc.ema1.Update(value)
	inc.ema2.Update(inc.ema1.Value())
	inc.value = 2*inc.ema1.Value() - inc.ema2.Value()
	inc.count++
}

func (inc *DEMA) Value() float64 {
	return inc.value
}

func (inc *DEMA) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *DEMA) Reset() {
	inc.ema1.Reset()
	inc.ema2.Reset()
	inc.value = 0.0
	inc.count = 0
}

var _ MovingAverage = (*DEMA)(nil)
