package indicator

// RMA is the running moving average (Wilder smoothing) with
// lambda 1/window. It reacts slower than EWMA and is the classic
// smoother used for ATR and RSI.
//
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py
type RMA struct {
	Window int

	value float64
	count int
}

func NewRMA(window int) *RMA {
	return &RMA{Window: window}
}

func (inc *RMA) Update(value float64) {
	lambda := 1.0 / float64(inc.Window)

	if inc.count == 0 {
		inc.value = value
	} else {
		inc.value = inc.value*(1-lambda) + value*lambda
	}

	inc.count++
}

func (inc *RMA) Value() float64 {
	return inc.value
}

func (inc *RMA) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *RMA) Reset() {
	inc.value = 0.0
	inc.count = 0
}

var _ MovingAverage = (*RMA)(nil)
