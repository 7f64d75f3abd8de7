package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantstream/quantstream/pkg/types"
)

func Test_NewAverageTrueRange_RejectsNonPositivePeriod(t *testing.T) {
	_, err := NewDefaultAverageTrueRange(0)
	assert.Error(t, err)

	_, err = NewAverageTrueRange(-3, MovingAverageTypeSimple, true, 0.0)
	assert.Error(t, err)

	atr, err := NewDefaultAverageTrueRange(1)
	assert.NoError(t, err)
	assert.NotNil(t, atr)
}

func Test_AverageTrueRange_SingleUpdate(t *testing.T) {
	// true range = max(9, 10) - min(8, 9) = 2 because the previous close
	// is seeded with the first bar's close
	atr, err := NewAverageTrueRange(1, MovingAverageTypeSimple, true, 0.0)
	assert.NoError(t, err)

	atr.Update(10.0, 8.0, 9.0)
	assert.Equal(t, 2.0, atr.Value())
	assert.Equal(t, 1, atr.Count())
	assert.True(t, atr.HasInputs())
	assert.True(t, atr.IsInitialized())
}

func Test_AverageTrueRange_Sequence(t *testing.T) {
	atr, err := NewAverageTrueRange(3, MovingAverageTypeSimple, true, 0.0)
	assert.NoError(t, err)

	bars := [][3]float64{
		{10.0, 8.0, 9.0},
		{11.0, 9.0, 10.0},
		{12.0, 10.0, 11.0},
	}

	// true ranges are 2, max(9,11)-min(9,9)=2, max(10,12)-min(10,10)=2
	for i, b := range bars {
		assert.False(t, atr.IsInitialized(), "should not be initialized before update %d", i+1)
		atr.Update(b[0], b[1], b[2])
	}

	assert.Equal(t, 2.0, atr.Value())
	assert.Equal(t, 3, atr.Count())
	assert.True(t, atr.IsInitialized())
}

func Test_AverageTrueRange_InitializationTransition(t *testing.T) {
	for _, period := range []int{1, 2, 5, 14} {
		atr, err := NewDefaultAverageTrueRange(period)
		assert.NoError(t, err)

		assert.False(t, atr.HasInputs())

		for i := 0; i < period; i++ {
			assert.False(t, atr.IsInitialized(), "period %d: initialized before update %d", period, i+1)
			atr.Update(10.0, 9.0, 9.5)
			assert.True(t, atr.HasInputs())
		}

		assert.True(t, atr.IsInitialized(), "period %d: not initialized after %d updates", period, period)
	}
}

func Test_AverageTrueRange_WithoutPreviousClose(t *testing.T) {
	atr, err := NewAverageTrueRange(2, MovingAverageTypeSimple, false, 0.0)
	assert.NoError(t, err)

	// the close is irrelevant here, only high - low is used
	atr.Update(10.0, 7.0, 123.0)
	assert.Equal(t, 3.0, atr.Value())

	atr.Update(10.0, 9.0, 456.0)
	assert.Equal(t, 2.0, atr.Value())
	assert.True(t, atr.IsInitialized())
}

func Test_AverageTrueRange_ValueFloor(t *testing.T) {
	atr, err := NewAverageTrueRange(1, MovingAverageTypeSimple, true, 5.0)
	assert.NoError(t, err)

	atr.Update(10.0, 8.0, 9.0)
	assert.Equal(t, 5.0, atr.Value(), "small true range must be pinned to the floor")

	// a large range lifts the value above the floor again
	atr.Update(30.0, 10.0, 20.0)
	assert.Equal(t, 21.0, atr.Value())
	assert.GreaterOrEqual(t, atr.Value(), 5.0)
}

func Test_AverageTrueRange_FloorDoesNotCorruptSmoothing(t *testing.T) {
	floored, err := NewAverageTrueRange(3, MovingAverageTypeSimple, true, 100.0)
	assert.NoError(t, err)

	plain, err := NewAverageTrueRange(3, MovingAverageTypeSimple, true, 0.0)
	assert.NoError(t, err)

	bars := [][3]float64{
		{10.0, 8.0, 9.0},
		{11.0, 9.0, 10.0},
		{12.0, 10.0, 11.0},
	}
	for _, b := range bars {
		floored.Update(b[0], b[1], b[2])
		plain.Update(b[0], b[1], b[2])
		assert.Equal(t, 100.0, floored.Value())
	}

	// the inner moving average is untouched by the floor: a huge bar brings
	// both instances to the same reading
	floored.Update(500.0, 11.0, 200.0)
	plain.Update(500.0, 11.0, 200.0)
	assert.Equal(t, plain.Value(), floored.Value())
}

func Test_AverageTrueRange_WilderSmoothing(t *testing.T) {
	atr, err := NewAverageTrueRange(2, MovingAverageTypeWilder, true, 0.0)
	assert.NoError(t, err)

	atr.Update(10.0, 8.0, 9.0)
	assert.Equal(t, 2.0, atr.Value())

	// true range = max(9, 12) - min(9, 9) = 3, rma = 2*0.5 + 3*0.5
	atr.Update(12.0, 9.0, 11.0)
	assert.Equal(t, 2.5, atr.Value())
	assert.True(t, atr.IsInitialized())
}

func Test_AverageTrueRange_DegenerateCandle(t *testing.T) {
	atr, err := NewAverageTrueRange(1, MovingAverageTypeSimple, false, 0.0)
	assert.NoError(t, err)

	// high < low is accepted, the result is degenerate but well-defined
	atr.Update(8.0, 10.0, 9.0)
	assert.Equal(t, -2.0, atr.Value())
	assert.False(t, math.IsNaN(atr.Value()))
	assert.Equal(t, 1, atr.Count())
}

func Test_AverageTrueRange_Reset(t *testing.T) {
	bars := [][3]float64{
		{10.0, 8.0, 9.0},
		{11.0, 9.0, 10.5},
		{13.0, 10.0, 12.0},
		{12.5, 11.0, 11.5},
	}

	run := func(atr *AverageTrueRange) (values []float64, counts []int, inits []bool) {
		for _, b := range bars {
			atr.Update(b[0], b[1], b[2])
			values = append(values, atr.Value())
			counts = append(counts, atr.Count())
			inits = append(inits, atr.IsInitialized())
		}
		return values, counts, inits
	}

	used, err := NewAverageTrueRange(3, MovingAverageTypeExponential, true, 0.0)
	assert.NoError(t, err)
	run(used)
	used.Reset()

	assert.False(t, used.HasInputs())
	assert.False(t, used.IsInitialized())
	assert.Equal(t, 0, used.Count())
	assert.Equal(t, 0.0, used.Value())

	fresh, err := NewAverageTrueRange(3, MovingAverageTypeExponential, true, 0.0)
	assert.NoError(t, err)

	v1, c1, i1 := run(used)
	v2, c2, i2 := run(fresh)
	assert.Equal(t, v2, v1, "reset instance must reproduce the trajectory of a fresh one")
	assert.Equal(t, c2, c1)
	assert.Equal(t, i2, i1)
}

func Test_AverageTrueRange_IgnoresTicks(t *testing.T) {
	atr, err := NewDefaultAverageTrueRange(2)
	assert.NoError(t, err)

	atr.Update(10.0, 8.0, 9.0)
	before := atr.Value()

	atr.HandleQuoteTick(types.QuoteTick{Symbol: "BTCUSDT", BidPrice: 9.0, AskPrice: 9.1})
	atr.HandleTradeTick(types.TradeTick{Symbol: "BTCUSDT", Price: 9.05, Size: 1.0})

	assert.Equal(t, before, atr.Value())
	assert.Equal(t, 1, atr.Count())
	assert.False(t, atr.IsInitialized())
}

func Test_AverageTrueRange_HandleBar(t *testing.T) {
	atr, err := NewDefaultAverageTrueRange(1)
	assert.NoError(t, err)

	atr.HandleBar(types.KLine{
		Symbol:   "BTCUSDT",
		Interval: types.Interval1m,
		High:     10.0,
		Low:      8.0,
		Close:    9.0,
		Closed:   true,
	})

	assert.Equal(t, 2.0, atr.Value())
}

func Test_AverageTrueRange_String(t *testing.T) {
	atr, err := NewAverageTrueRange(14, MovingAverageTypeWilder, true, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "AverageTrueRange(14,wilder,true,0.5)", atr.String())
	assert.Equal(t, "AverageTrueRange", atr.Name())
}
