package percent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, Percent(100), FromInt(250))
	assert.Equal(t, Percent(0), FromFloat(-3))
	assert.Equal(t, Percent(33), FromFloat(33.3))
	p, err := FromString(" 20% ")
	assert.NoError(t, err)
	assert.Equal(t, "20%", p.String())
	assert.Equal(t, 48.0, FromInt(50).Of(96))
	assert.Equal(t, "calc(50% - 1rem)", FromInt(50).CalcMinus("1rem"))
}
