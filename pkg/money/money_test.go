package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dentara/dentara/pkg/money"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, "123.46", money.RoundCents(decimal.RequireFromString("123.456")).String())
	assert.Equal(t, "10", money.RoundCents(decimal.NewFromInt(10)).String())
	assert.Equal(t, "-0.01", money.RoundCents(decimal.RequireFromString("-0.005")).String())
}

func TestEqual(t *testing.T) {
	a := decimal.NewFromFloat(10.001)
	b := decimal.NewFromFloat(10.0)
	assert.True(t, money.Equal(a, b), "sub-cent drift should compare equal")
	assert.False(t, money.Equal(decimal.NewFromFloat(10.01), b))
}
