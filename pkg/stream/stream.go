package stream

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/quantstream/quantstream/pkg/metrics"
	"github.com/quantstream/quantstream/pkg/types"
)

const spotWebSocketURL = "wss://stream.binance.com:9443/ws"

// Stream subscribes to the Binance spot kline channel for a single
// symbol and interval and dispatches parsed klines to its subscribers.
//
// Callbacks are invoked from the read-loop goroutine; register them
// before calling Connect.
type Stream struct {
	Symbol   string
	Interval types.Interval

	baseURL string

	mu   sync.Mutex
	conn *websocket.Conn

	kLineCallbacks       []func(k types.KLine)
	kLineClosedCallbacks []func(k types.KLine)
}

func NewStream(symbol string, interval types.Interval) *Stream {
	return &Stream{
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
		baseURL:  spotWebSocketURL,
	}
}

// OnKLine registers a callback for every kline push, including updates
// to the still-open candle.
func (s *Stream) OnKLine(cb func(k types.KLine)) {
	s.kLineCallbacks = append(s.kLineCallbacks, cb)
}

// OnKLineClosed registers a callback invoked only when a candle closes.
func (s *Stream) OnKLineClosed(cb func(k types.KLine)) {
	s.kLineClosedCallbacks = append(s.kLineClosedCallbacks, cb)
}

func (s *Stream) EmitKLine(k types.KLine) {
	for _, cb := range s.kLineCallbacks {
		cb(k)
	}
}

func (s *Stream) EmitKLineClosed(k types.KLine) {
	for _, cb := range s.kLineClosedCallbacks {
		cb(k)
	}
}

func (s *Stream) endpoint() string {
	return fmt.Sprintf("%s/%s@kline_%s", s.baseURL, strings.ToLower(s.Symbol), s.Interval)
}

// Connect dials the websocket endpoint and starts the read loop. The
// loop reconnects with exponential backoff until ctx is cancelled.
func (s *Stream) Connect(ctx context.Context) error {
	if err := s.connect(ctx); err != nil {
		return err
	}

	go s.read(ctx)
	return nil
}

func (s *Stream) connect(ctx context.Context) error {
	return backoff.Retry(func() error {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.endpoint(), nil)
		if err != nil {
			log.WithError(err).Warnf("failed to dial %s, retrying...", s.endpoint())
			return err
		}

		conn.SetPingHandler(nil)

		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()

		log.Infof("%s kline stream connected: %s", s.Symbol, s.endpoint())
		return nil
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
}

func (s *Stream) read(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		default:
			s.mu.Lock()
			conn := s.conn
			s.mu.Unlock()

			_, message, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				log.WithError(err).Errorf("%s kline stream read error, reconnecting", s.Symbol)
				metrics.StreamReconnectsMetrics.With(map[string]string{"symbol": s.Symbol}).Inc()

				if err := s.connect(ctx); err != nil {
					log.WithError(err).Errorf("%s kline stream reconnect failed", s.Symbol)
					return
				}
				continue
			}

			e, err := parseKLineEvent(message)
			if err != nil {
				log.WithError(err).Warn("dropping unparseable stream message")
				continue
			}

			k, err := e.KLineValue()
			if err != nil {
				log.WithError(err).Warn("dropping malformed kline payload")
				continue
			}

			s.EmitKLine(k)
			if k.Closed {
				s.EmitKLineClosed(k)
			}
		}
	}
}

func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
