package telemetry

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/armon/go-metrics"
	"github.com/stretchr/testify/require"
)

func TestSetBigGauge(t *testing.T) {
	inm := metrics.NewInmemSink(time.Second, time.Minute)

	metricsConf := metrics.DefaultConfig("test")
	metricsConf.EnableHostname = false
	metricsConf.EnableRuntimeMetrics = false

	_, err := metrics.NewGlobal(metricsConf, inm)
	require.NoError(t, err)

	readGauge := func(name string) float32 {
		intervals := inm.Data()
		require.NotEmpty(t, intervals)

		gauge, exists := intervals[len(intervals)-1].Gauges[name]
		require.True(t, exists, name)

		return gauge.Value
	}

	price := uint64(5_000_000_000)
	UpdateSenderGasPrice(big.NewInt(5_000_000_000))
	require.Equal(t, float32(1), readGauge("test.eth_sender.gas_price.high"))
	require.Equal(t, float32(uint32(price)), readGauge("test.eth_sender.gas_price.low"))

	// a price past 64 bits saturates instead of reporting garbage
	UpdateSenderGasPrice(new(big.Int).Lsh(big.NewInt(1), 300))
	require.Equal(t, float32(math.MaxUint32), readGauge("test.eth_sender.gas_price.high"))
	require.Equal(t, float32(math.MaxUint32), readGauge("test.eth_sender.gas_price.low"))
}
