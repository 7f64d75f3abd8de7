package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EWMA(t *testing.T) {
	// window 3 gives multiplier 0.5
	ewma := NewEWMA(3)

	ewma.Update(2.0)
	assert.Equal(t, 2.0, ewma.Value(), "first input seeds the value")

	ewma.Update(4.0)
	assert.Equal(t, 3.0, ewma.Value())

	ewma.Update(5.0)
	assert.Equal(t, 4.0, ewma.Value())
	assert.True(t, ewma.IsInitialized())
}

func Test_RMA(t *testing.T) {
	// window 2 gives lambda 0.5
	rma := NewRMA(2)

	rma.Update(2.0)
	assert.Equal(t, 2.0, rma.Value())
	assert.False(t, rma.IsInitialized())

	rma.Update(4.0)
	assert.Equal(t, 3.0, rma.Value())
	assert.True(t, rma.IsInitialized())
}
