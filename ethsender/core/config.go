package core

import (
	apiCore "github.com/orbitl2/operator/api/core"
	"github.com/orbitl2/operator/logger"
	"github.com/orbitl2/operator/telemetry"
)

type NodeConfig struct {
	NodeURL    string `json:"nodeUrl"`
	SigningKey string `json:"signingKey"`
}

type GasAdjusterConfig struct {
	// GasPriceSamplesAmount is the number of decided prices gathered
	// before the price limit is rescaled.
	GasPriceSamplesAmount int `json:"gasPriceSamplesAmount"`
	// LimitScaleFactor gives the next cycle's limit headroom above the
	// observed average. Must be >= 1.
	LimitScaleFactor float64 `json:"limitScaleFactor"`
	// InitialGasPriceLimit seeds the database on the very first run.
	InitialGasPriceLimit uint64 `json:"initialGasPriceLimit"`
}

type SenderConfig struct {
	Node             NodeConfig        `json:"node"`
	GasAdjuster      GasAdjusterConfig `json:"gasAdjuster"`
	DbsPath          string            `json:"dbsPath"`
	PullTimeMilis    uint64            `json:"pullTime"`
	ResubmitTimeSecs uint64            `json:"resubmitTimeSecs"`
}

type AppConfig struct {
	Sender    SenderConfig              `json:"sender"`
	API       apiCore.APIConfig         `json:"api"`
	Telemetry telemetry.TelemetryConfig `json:"telemetry"`
	Logger    logger.LoggerConfig       `json:"logger"`
}
