package gasadjuster

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/ethsender/core"
	"github.com/orbitl2/operator/telemetry"
)

// GasAdjuster decides the gas price for every transaction send attempt,
// keeping it below an adaptive upper bound, and periodically rescales that
// bound from the prices it actually used.
//
// The mutex guards the statistics and the cached limit only. Oracle queries
// and durable writes happen outside of it, so a slow settlement-layer node
// never stalls a concurrent price decision.
type GasAdjuster struct {
	statistics    *GasStatistics
	gasPriceLimit *big.Int

	samplesAmount int
	scalePercent  int64

	lock   sync.Mutex
	logger hclog.Logger
}

var _ core.GasPriceAdjuster = (*GasAdjuster)(nil)

// NewGasAdjuster loads the current price limit from the database. A load
// failure is returned to the caller: without a persisted limit the adjuster
// would run unbounded, so startup must not proceed.
func NewGasAdjuster(
	db core.Database, config core.GasAdjusterConfig, logger hclog.Logger,
) (*GasAdjuster, error) {
	limit, err := db.LoadGasPriceLimit()
	if err != nil {
		return nil, fmt.Errorf("failed to load gas price limit: %w", err)
	}

	samplesAmount := config.GasPriceSamplesAmount
	if samplesAmount <= 0 {
		samplesAmount = DefaultGasPriceSamplesAmount
	}

	scaleFactor := config.LimitScaleFactor
	if scaleFactor < 1 {
		scaleFactor = DefaultLimitScaleFactor
	}

	return &GasAdjuster{
		statistics:    NewGasStatistics(),
		gasPriceLimit: limit,
		samplesAmount: samplesAmount,
		scalePercent:  scaleFactorToPercent(scaleFactor),
		logger:        logger,
	}, nil
}

// GetGasPrice returns the gas price to use for this send attempt.
// previousPrice is nil for a first attempt. For a resubmission of a stuck
// transaction it is the previously used price, and the result is at least
// that price bumped by 15%, unless the network asks for more. Either way the
// result never exceeds the current price limit. The decided price is
// recorded as a sample for the next limit rescaling.
func (ga *GasAdjuster) GetGasPrice(
	ctx context.Context, oracle core.GasPriceOracle, previousPrice *big.Int,
) (*big.Int, error) {
	networkPrice, err := oracle.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggested gas price: %w", err)
	}

	price := new(big.Int).Set(networkPrice)

	if previousPrice != nil {
		bumped := new(big.Int).Mul(previousPrice, big.NewInt(bumpPercentNumerator))
		bumped.Div(bumped, big.NewInt(bumpPercentDenominator))

		if bumped.Cmp(price) > 0 {
			price = bumped
		}
	}

	clamped := false

	ga.lock.Lock()

	if price.Cmp(ga.gasPriceLimit) > 0 {
		price.Set(ga.gasPriceLimit)
		clamped = true
	}

	ga.statistics.Add(price)

	ga.lock.Unlock()

	if clamped {
		ga.logger.Debug("gas price clamped to the current limit", "price", price)
		telemetry.UpdateSenderGasPriceClampedCounter(1)
	}

	telemetry.UpdateSenderGasPrice(price)

	return price, nil
}

// KeepUpdated rescales the price limit from the samples gathered since the
// previous call and persists it. With no samples gathered it is a no-op.
// If the durable write fails, both the cached limit and the samples are kept
// so the rescale can be retried on the next cycle.
func (ga *GasAdjuster) KeepUpdated(db core.Database) error {
	ga.lock.Lock()
	samples := ga.statistics.DrainAndClear()
	ga.lock.Unlock()

	if len(samples) == 0 {
		return nil
	}

	sum := new(big.Int)
	for _, sample := range samples {
		sum.Add(sum, sample)
	}

	average := sum.Div(sum, big.NewInt(int64(len(samples))))

	newLimit := new(big.Int).Mul(average, big.NewInt(ga.scalePercent))
	newLimit.Div(newLimit, big.NewInt(100))

	if err := db.UpdateGasPriceLimit(newLimit); err != nil {
		ga.lock.Lock()
		ga.statistics.Restore(samples)
		ga.lock.Unlock()

		telemetry.UpdateSenderGasPriceLimitUpdateFailedCounter(1)

		return fmt.Errorf("failed to update gas price limit: %w", err)
	}

	ga.lock.Lock()
	ga.gasPriceLimit = newLimit
	ga.lock.Unlock()

	ga.logger.Debug("gas price limit updated", "limit", newLimit, "samples", len(samples))
	telemetry.UpdateSenderGasPriceLimit(newLimit)

	return nil
}

// SamplesAmount returns how many samples make up one adjustment cycle, so
// the caller can decide when a KeepUpdated call is due.
func (ga *GasAdjuster) SamplesAmount() int {
	return ga.samplesAmount
}

func (ga *GasAdjuster) SamplesCount() int {
	ga.lock.Lock()
	defer ga.lock.Unlock()

	return ga.statistics.Len()
}

func (ga *GasAdjuster) GasPriceLimit() *big.Int {
	ga.lock.Lock()
	defer ga.lock.Unlock()

	return new(big.Int).Set(ga.gasPriceLimit)
}
