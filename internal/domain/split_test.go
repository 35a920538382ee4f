package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOrderAmount(t *testing.T) {
	split, err := SplitOrderAmount(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(200), split.PlatformCents)
	assert.Equal(t, int64(800), split.VendorCents)
}

func TestSplitRounding(t *testing.T) {
	cases := []struct {
		amount   int64
		platform int64
		vendor   int64
	}{
		{100, 20, 80},
		{101, 20, 81},   // 80.8 rounds up
		{102, 20, 82},   // 81.6 rounds up
		{103, 21, 82},   // 82.4 rounds down
		{199, 40, 159},  // 159.2 rounds down
		{12345, 2469, 9876},
	}

	for _, tc := range cases {
		split, err := SplitOrderAmount(tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.platform, split.PlatformCents, "amount %d", tc.amount)
		assert.Equal(t, tc.vendor, split.VendorCents, "amount %d", tc.amount)
	}
}

// No cent ever leaks: platform + vendor reassembles the amount exactly.
func TestSplitExactness(t *testing.T) {
	for amount := int64(100); amount < 25000; amount++ {
		split, err := SplitOrderAmount(amount)
		require.NoError(t, err)
		require.Equal(t, amount, split.PlatformCents+split.VendorCents, "amount %d", amount)
		require.GreaterOrEqual(t, split.PlatformCents, int64(0))
		require.GreaterOrEqual(t, split.VendorCents, int64(0))
	}
}

func TestSplitNegativeAmount(t *testing.T) {
	_, err := SplitOrderAmount(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLegacyVendorEarningsMatchesSplit(t *testing.T) {
	for _, amount := range []int64{100, 101, 999, 1000, 4950, 123456} {
		split, err := SplitOrderAmount(amount)
		require.NoError(t, err)
		assert.Equal(t, split.VendorCents, LegacyVendorEarnings(amount), "amount %d", amount)
	}
}
