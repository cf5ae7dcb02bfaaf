package core

import (
	"context"
	"math/big"
)

type EthSenderManager interface {
	Start() error
	Stop() error
}

type EthSender interface {
	Start(ctx context.Context)
}

// GasPriceOracle supplies the gas price currently suggested by the
// settlement layer network.
type GasPriceOracle interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// GasPriceAdjuster decides the gas price for every send attempt and
// maintains the adaptive upper bound on it.
type GasPriceAdjuster interface {
	// GetGasPrice returns the price to use for this send attempt.
	// previousPrice is nil for a first attempt and set to the previously
	// used price when a stuck transaction is being resubmitted.
	GetGasPrice(ctx context.Context, oracle GasPriceOracle, previousPrice *big.Int) (*big.Int, error)
	// KeepUpdated recomputes the adaptive price limit from the gathered
	// samples and persists it.
	KeepUpdated(db Database) error
	// SamplesAmount returns how many samples make up one adjustment cycle,
	// so the caller can decide when KeepUpdated is due.
	SamplesAmount() int
	SamplesCount() int
	GasPriceLimit() *big.Int
}

type Database interface {
	Init(filePath string) error
	Close() error

	LoadGasPriceLimit() (*big.Int, error)
	UpdateGasPriceLimit(value *big.Int) error

	AddLastSubmittedGasPrice(price *big.Int) error
	GetLastSubmittedGasPrice() (*big.Int, error)
}

// TxPayload is a built transaction payload awaiting submission. The gas
// price is decided at send time, everything else is prepared upstream.
type TxPayload struct {
	ID       uint64 `json:"id"`
	To       string `json:"to"`
	Data     []byte `json:"data"`
	GasLimit uint64 `json:"gasLimit"`
}

// TxSource supplies payloads that should be submitted to the settlement layer.
type TxSource interface {
	// NextPayload returns the next payload awaiting submission or nil if
	// there is none at the moment.
	NextPayload(ctx context.Context) (*TxPayload, error)
}

// TxStatus is the settlement layer's view of a payload's latest submission.
type TxStatus int

const (
	// TxStatusPending - the transaction is in the pool but not mined yet.
	TxStatusPending TxStatus = iota
	// TxStatusSettled - the transaction was mined.
	TxStatusSettled
	// TxStatusDropped - the transaction is no longer known to the pool
	// (evicted or never accepted), a fresh submission is needed.
	TxStatusDropped
)

// TxSubmitter pushes a payload to the settlement layer with the given gas
// price and reports the status of a previously submitted payload.
type TxSubmitter interface {
	Submit(ctx context.Context, payload *TxPayload, gasPrice *big.Int) error
	GetTxStatus(ctx context.Context, payload *TxPayload) (TxStatus, error)
}
