package ethsender

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/ethsender/core"
	"github.com/orbitl2/operator/telemetry"
)

// EthSenderImpl periodically submits pending payloads to the settlement
// layer. Every send attempt asks the gas adjuster for a price: first
// attempts use the network-suggested price, resubmissions of transactions
// stuck longer than the resubmit timeout use the bumped previous price.
// Once enough price samples are gathered the adjuster's limit is rescaled.
type EthSenderImpl struct {
	config    *core.SenderConfig
	adjuster  core.GasPriceAdjuster
	oracle    core.GasPriceOracle
	source    core.TxSource
	submitter core.TxSubmitter
	db        core.Database
	logger    hclog.Logger

	pendingPayload *core.TxPayload
	lastGasPrice   *big.Int
	lastSubmitTime time.Time
}

var _ core.EthSender = (*EthSenderImpl)(nil)

func NewEthSender(
	config *core.SenderConfig, adjuster core.GasPriceAdjuster, oracle core.GasPriceOracle,
	source core.TxSource, submitter core.TxSubmitter, db core.Database, logger hclog.Logger,
) *EthSenderImpl {
	return &EthSenderImpl{
		config:    config,
		adjuster:  adjuster,
		oracle:    oracle,
		source:    source,
		submitter: submitter,
		db:        db,
		logger:    logger,
	}
}

func (s *EthSenderImpl) Start(ctx context.Context) {
	s.logger.Debug("Eth sender started")

	ticker := time.NewTicker(time.Millisecond * time.Duration(s.config.PullTimeMilis))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := s.execute(ctx); err != nil {
			s.logger.Error("execute failed", "err", err)
		}
	}
}

func (s *EthSenderImpl) execute(ctx context.Context) error {
	if s.pendingPayload != nil {
		return s.checkPending(ctx)
	}

	payload, err := s.source.NextPayload(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve next payload: %w", err)
	}

	if payload == nil {
		return nil
	}

	return s.submit(ctx, payload, nil)
}

func (s *EthSenderImpl) checkPending(ctx context.Context) error {
	if s.lastGasPrice == nil {
		// the previous cycle failed before a price was decided, nothing
		// was sent, repeat the whole attempt
		return s.submit(ctx, s.pendingPayload, nil)
	}

	status, err := s.submitter.GetTxStatus(ctx, s.pendingPayload)
	if err != nil {
		return fmt.Errorf("failed to check pending payload %d: %w", s.pendingPayload.ID, err)
	}

	switch status {
	case core.TxStatusSettled:
		s.logger.Info("Payload submission settled", "id", s.pendingPayload.ID)

		s.pendingPayload = nil
		s.lastGasPrice = nil

		return nil
	case core.TxStatusDropped:
		s.logger.Info("Payload dropped from the pool, resubmitting",
			"id", s.pendingPayload.ID, "lastGasPrice", s.lastGasPrice)
		telemetry.UpdateSenderTxResubmittedCounter(1)

		return s.submit(ctx, s.pendingPayload, s.lastGasPrice)
	case core.TxStatusPending:
	}

	if time.Since(s.lastSubmitTime) < time.Second*time.Duration(s.config.ResubmitTimeSecs) {
		return nil
	}

	s.logger.Info("Payload stuck, resubmitting with a higher gas price",
		"id", s.pendingPayload.ID, "lastGasPrice", s.lastGasPrice)
	telemetry.UpdateSenderTxResubmittedCounter(1)

	return s.submit(ctx, s.pendingPayload, s.lastGasPrice)
}

func (s *EthSenderImpl) submit(ctx context.Context, payload *core.TxPayload, previousPrice *big.Int) error {
	gasPrice, err := s.adjuster.GetGasPrice(ctx, s.oracle, previousPrice)
	if err != nil {
		// the payload is already consumed from the source, keep it so
		// the attempt is repeated next cycle
		s.pendingPayload = payload

		return fmt.Errorf("failed to decide gas price for payload %d: %w", payload.ID, err)
	}

	defer s.updateGasPriceLimit()

	if err := s.submitter.Submit(ctx, payload, gasPrice); err != nil {
		// keep the payload and the decided price, the next cycle
		// retries with the stuck-transaction bump applied
		s.pendingPayload = payload
		s.lastGasPrice = gasPrice
		s.lastSubmitTime = time.Now()

		telemetry.UpdateSenderTxSubmitFailedCounter(1)

		return fmt.Errorf("failed to submit payload %d: %w", payload.ID, err)
	}

	s.pendingPayload = payload
	s.lastGasPrice = gasPrice
	s.lastSubmitTime = time.Now()

	if err := s.db.AddLastSubmittedGasPrice(gasPrice); err != nil {
		s.logger.Error("failed to store last submitted gas price", "err", err)
	}

	s.logger.Info("Payload submitted", "id", payload.ID, "gasPrice", gasPrice)
	telemetry.UpdateSenderTxSubmittedCounter(1)

	return nil
}

// updateGasPriceLimit rescales the adjuster's price limit once a full cycle
// of samples has been gathered. A persistence failure keeps both the cached
// limit and the samples, so the rescale is retried after the next decision.
func (s *EthSenderImpl) updateGasPriceLimit() {
	if s.adjuster.SamplesCount() < s.adjuster.SamplesAmount() {
		return
	}

	if err := s.adjuster.KeepUpdated(s.db); err != nil {
		s.logger.Error("failed to update gas price limit", "err", err)
	}
}
