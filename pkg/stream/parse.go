package stream

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/quantstream/quantstream/pkg/types"
)

// KLineEvent is the raw kline payload pushed by the Binance spot
// websocket. Prices arrive as strings.
type KLineEvent struct {
	EventType string `json:"e"`
	EventTime int64  `json:"E"`
	Symbol    string `json:"s"`

	KLine KLinePayload `json:"k"`
}

type KLinePayload struct {
	StartTime int64  `json:"t"`
	EndTime   int64  `json:"T"`
	Symbol    string `json:"s"`
	Interval  string `json:"i"`

	Open   string `json:"o"`
	Close  string `json:"c"`
	High   string `json:"h"`
	Low    string `json:"l"`
	Volume string `json:"v"`

	Closed bool `json:"x"`
}

func parseKLineEvent(in []byte) (*KLineEvent, error) {
	var e KLineEvent
	if err := json.Unmarshal(in, &e); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal kline event")
	}

	if e.EventType != "kline" {
		return nil, errors.Errorf("unexpected event type: %s", e.EventType)
	}

	return &e, nil
}

// KLineValue converts the raw payload into a types.KLine.
func (e *KLineEvent) KLineValue() (types.KLine, error) {
	k := types.KLine{
		Symbol:    e.KLine.Symbol,
		Interval:  types.Interval(e.KLine.Interval),
		StartTime: time.UnixMilli(e.KLine.StartTime),
		EndTime:   time.UnixMilli(e.KLine.EndTime),
		Closed:    e.KLine.Closed,
	}

	fields := []struct {
		src string
		dst *float64
	}{
		{e.KLine.Open, &k.Open},
		{e.KLine.High, &k.High},
		{e.KLine.Low, &k.Low},
		{e.KLine.Close, &k.Close},
		{e.KLine.Volume, &k.Volume},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.src, 64)
		if err != nil {
			return k, errors.Wrapf(err, "invalid kline price field: %q", f.src)
		}
		*f.dst = v
	}

	return k, nil
}
