package indicator

import (
	"github.com/pkg/errors"
)

// MovingAverageType selects the smoothing algorithm used by indicators
// that own an inner moving average.
type MovingAverageType string

const (
	MovingAverageTypeSimple            MovingAverageType = "simple"
	MovingAverageTypeExponential       MovingAverageType = "exponential"
	MovingAverageTypeDoubleExponential MovingAverageType = "double_exponential"
	MovingAverageTypeWilder            MovingAverageType = "wilder"
	MovingAverageTypeWeighted          MovingAverageType = "weighted"
	MovingAverageTypeHull              MovingAverageType = "hull"
)

func (t MovingAverageType) String() string {
	return string(t)
}

func ParseMovingAverageType(s string) (MovingAverageType, error) {
	switch MovingAverageType(s) {
	case MovingAverageTypeSimple,
		MovingAverageTypeExponential,
		MovingAverageTypeDoubleExponential,
		MovingAverageTypeWilder,
		MovingAverageTypeWeighted,
		MovingAverageTypeHull:
		return MovingAverageType(s), nil
	}

	return "", errors.Errorf("unknown moving average type: %s", s)
}

// NewMovingAverage constructs the moving average variant selected by
// maType with the given window. An unrecognized tag falls back to the
// simple moving average. This is the single extension point for adding
// new smoothing algorithms.
func NewMovingAverage(maType MovingAverageType, window int) MovingAverage {
	switch maType {
	case MovingAverageTypeExponential:
		return NewEWMA(window)
	case MovingAverageTypeDoubleExponential:
		return NewDEMA(window)
	case MovingAverageTypeWilder:
		return NewRMA(window)
	case MovingAverageTypeWeighted:
		return NewWMA(window)
	case MovingAverageTypeHull:
		return NewHull(window)
	default:
		return NewSMA(window)
	}
}
