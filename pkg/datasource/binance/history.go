package binance

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"

	"github.com/quantstream/quantstream/pkg/types"
)

// HistoryService queries recent klines over the Binance REST API, used
// to warm up indicators before switching to the live stream.
type HistoryService struct {
	client *binance.Client
}

func NewHistoryService() *HistoryService {
	// public market data needs no credentials
	return &HistoryService{client: binance.NewClient("", "")}
}

func (s *HistoryService) QueryKLines(ctx context.Context, symbol string, interval types.Interval, limit int) ([]types.KLine, error) {
	rawKLines, err := s.client.NewKlinesService().
		Symbol(symbol).
		Interval(interval.String()).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s %s klines", symbol, interval)
	}

	kLines := make([]types.KLine, 0, len(rawKLines))
	for _, raw := range rawKLines {
		k, err := convertKLine(symbol, interval, raw)
		if err != nil {
			return nil, err
		}
		kLines = append(kLines, k)
	}

	return kLines, nil
}

func convertKLine(symbol string, interval types.Interval, raw *binance.Kline) (types.KLine, error) {
	k := types.KLine{
		Symbol:    symbol,
		Interval:  interval,
		StartTime: time.UnixMilli(raw.OpenTime),
		EndTime:   time.UnixMilli(raw.CloseTime),
		Closed:    true,
	}

	fields := []struct {
		src string
		dst *float64
	}{
		{raw.Open, &k.Open},
		{raw.High, &k.High},
		{raw.Low, &k.Low},
		{raw.Close, &k.Close},
		{raw.Volume, &k.Volume},
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
