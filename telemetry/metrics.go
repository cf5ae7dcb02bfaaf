package telemetry

import (
	"math"
	"math/big"

	"github.com/armon/go-metrics"
)

const (
	senderMetricsPrefix = "eth_sender"
)

func UpdateSenderGasPrice(price *big.Int) {
	setBigGauge([]string{senderMetricsPrefix, "gas_price"}, price)
}

func UpdateSenderGasPriceLimit(limit *big.Int) {
	setBigGauge([]string{senderMetricsPrefix, "gas_price_limit"}, limit)
}

func UpdateSenderGasPriceClampedCounter(cnt int) {
	metrics.IncrCounter([]string{senderMetricsPrefix, "gas_price_clamped_counter"}, float32(cnt))
}

func UpdateSenderGasPriceLimitUpdateFailedCounter(cnt int) {
	metrics.IncrCounter([]string{senderMetricsPrefix, "gas_price_limit_update_failed_counter"}, float32(cnt))
}

func UpdateSenderTxSubmittedCounter(cnt int) {
	metrics.IncrCounter([]string{senderMetricsPrefix, "tx_submitted_counter"}, float32(cnt))
}

func UpdateSenderTxResubmittedCounter(cnt int) {
	metrics.IncrCounter([]string{senderMetricsPrefix, "tx_resubmitted_counter"}, float32(cnt))
}

func UpdateSenderTxSubmitFailedCounter(cnt int) {
	metrics.IncrCounter([]string{senderMetricsPrefix, "tx_submit_failed_counter"}, float32(cnt))
}

// gauges are float32, a single one cannot hold a 256-bit price; values past
// 64 bits saturate the gauge instead of reporting garbage
func setBigGauge(key []string, v *big.Int) {
	val := uint64(math.MaxUint64)
	if v.IsUint64() {
		val = v.Uint64()
	}

	metrics.SetGauge(append(key[:len(key):len(key)], "high"), float32(val>>32))
	metrics.SetGauge(append(key[:len(key):len(key)], "low"), float32(uint32(val))) //nolint:gosec
}
