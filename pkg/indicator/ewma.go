package indicator

// EWMA is the standard exponentially weighted moving average with
// multiplier 2/(window+1). The first input seeds the value.
type EWMA struct {
	Window int

	value float64
	count int
}

func NewEWMA(window int) *EWMA {
	return &EWMA{Window: window}
}

func (inc *EWMA) Update(value float64) {
	var multiplier = 2.0 / float64(1+inc.Window)

	if inc.count == 0 {
		inc.value = value
	} else {
		inc.value = (1-multiplier)*inc.value + multiplier*value
	}

	inc.count++
}

func (inc *EWMA) Value() float64 {
	return inc.value
}

func (inc *EWMA) IsInitialized() bool {
	return inc.count >= inc.Window
}

func (inc *EWMA) Reset() {
	inc.value = 0.0
	inc.count = 0
}

var _ MovingAverage = (*EWMA)(nil)
