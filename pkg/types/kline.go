package types

import (
	"fmt"
	"time"
)

// KLine is a closed or in-progress candlestick for a symbol at a given
// interval. Prices are plain float64 since the indicator engine works in
// floating point anyway.
type KLine struct {
	Symbol   string   `json:"symbol"`
	Interval Interval `json:"interval"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`

	Closed bool `json:"closed"`
}

func (k KLine) Mid() float64 {
	return (k.High + k.Low) / 2.0
}

func (k KLine) String() string {
	return fmt.Sprintf("%s KLINE %s %s O:%f H:%f L:%f C:%f V:%f",
		k.Symbol, k.Interval, k.EndTime.Format("2006-01-02 15:04"), k.Open, k.High, k.Low, k.Close, k.Volume)
}
