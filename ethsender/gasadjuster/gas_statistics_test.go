package gasadjuster

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGasStatistics(t *testing.T) {
	t.Parallel()

	t.Run("add and len", func(t *testing.T) {
		t.Parallel()

		stats := NewGasStatistics()
		require.Equal(t, 0, stats.Len())

		stats.Add(big.NewInt(10))
		stats.Add(big.NewInt(20))
		require.Equal(t, 2, stats.Len())
	})

	t.Run("add stores a copy", func(t *testing.T) {
		t.Parallel()

		stats := NewGasStatistics()

		price := big.NewInt(10)
		stats.Add(price)
		price.SetInt64(99)

		require.Equal(t, []*big.Int{big.NewInt(10)}, stats.DrainAndClear())
	})

	t.Run("drain and clear", func(t *testing.T) {
		t.Parallel()

		stats := NewGasStatistics()
		stats.Add(big.NewInt(1))
		stats.Add(big.NewInt(2))

		samples := stats.DrainAndClear()
		require.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(2)}, samples)
		require.Equal(t, 0, stats.Len())
		require.Empty(t, stats.DrainAndClear())
	})

	t.Run("restore keeps ordering", func(t *testing.T) {
		t.Parallel()

		stats := NewGasStatistics()
		stats.Add(big.NewInt(1))
		stats.Add(big.NewInt(2))

		samples := stats.DrainAndClear()

		// a sample gathered while the drained ones were being processed
		stats.Add(big.NewInt(3))

		stats.Restore(samples)

		require.Equal(t,
			[]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
			stats.DrainAndClear())
	})
}
