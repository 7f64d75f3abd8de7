package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type Interval string

func (i Interval) Minutes() int {
	return SupportedIntervals[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Minutes()) * time.Minute
}

func (i Interval) String() string {
	return string(i)
}

func (i *Interval) UnmarshalJSON(b []byte) (err error) {
	var a string
	err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	*i = Interval(a)
	return
}

func ParseInterval(s string) (Interval, error) {
	interval := Interval(s)
	if _, ok := SupportedIntervals[interval]; !ok {
		return "", fmt.Errorf("unsupported interval: %s", s)
	}
	return interval, nil
}

var Interval1m = Interval("1m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval30m = Interval("30m")
var Interval1h = Interval("1h")
var Interval2h = Interval("2h")
var Interval4h = Interval("4h")
var Interval6h = Interval("6h")
var Interval12h = Interval("12h")
var Interval1d = Interval("1d")

var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval2h:  120,
	Interval4h:  240,
	Interval6h:  360,
	Interval12h: 720,
	Interval1d:  1440,
}
