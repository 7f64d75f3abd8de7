package types

import "time"

// QuoteTick is a top-of-book update. Indicators that only consume bars
// receive these and may ignore them.
type QuoteTick struct {
	Symbol string `json:"symbol"`

	BidPrice float64 `json:"bidPrice"`
	AskPrice float64 `json:"askPrice"`
	BidSize  float64 `json:"bidSize"`
	AskSize  float64 `json:"askSize"`

	Time time.Time `json:"time"`
}

func (t QuoteTick) Mid() float64 {
	return (t.BidPrice + t.AskPrice) / 2.0
}

// TradeTick is a single executed trade.
type TradeTick struct {
	Symbol string `json:"symbol"`

	Price float64 `json:"price"`
	Size  float64 `json:"size"`

	Time time.Time `json:"time"`
}
