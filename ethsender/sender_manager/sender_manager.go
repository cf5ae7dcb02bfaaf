package sendermanager

import (
	"context"
	"math/big"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/eth"
	"github.com/orbitl2/operator/ethsender"
	"github.com/orbitl2/operator/ethsender/core"
	databaseaccess "github.com/orbitl2/operator/ethsender/database_access"
	"github.com/orbitl2/operator/ethsender/gasadjuster"
)

type EthSenderManagerImpl struct {
	config    *core.AppConfig
	sender    core.EthSender
	adjuster  core.GasPriceAdjuster
	db        core.Database
	cancelCtx context.CancelFunc
}

var _ core.EthSenderManager = (*EthSenderManagerImpl)(nil)

func NewEthSenderManager(
	config *core.AppConfig, source core.TxSource, submitter core.TxSubmitter, logger hclog.Logger,
) (*EthSenderManagerImpl, error) {
	var initialLimit *big.Int
	if config.Sender.GasAdjuster.InitialGasPriceLimit > 0 {
		initialLimit = new(big.Int).SetUint64(config.Sender.GasAdjuster.InitialGasPriceLimit)
	}

	db, err := databaseaccess.NewDatabase(
		filepath.Join(config.Sender.DbsPath, "eth_sender.db"), initialLimit)
	if err != nil {
		return nil, err
	}

	adjuster, err := gasadjuster.NewGasAdjuster(
		db, config.Sender.GasAdjuster, logger.Named("GAS_ADJUSTER"))
	if err != nil {
		return nil, err
	}

	oracle := eth.NewGasPriceFetcher(config.Sender.Node.NodeURL, logger.Named("ETH"))

	sender := ethsender.NewEthSender(
		&config.Sender, adjuster, oracle, source, submitter, db, logger.Named("ETH_SENDER"))

	return &EthSenderManagerImpl{
		config:   config,
		sender:   sender,
		adjuster: adjuster,
		db:       db,
	}, nil
}

func (sm *EthSenderManagerImpl) Start() error {
	ctx, cancelCtx := context.WithCancel(context.Background())
	sm.cancelCtx = cancelCtx

	go sm.sender.Start(ctx)

	return nil
}

func (sm *EthSenderManagerImpl) Stop() error {
	sm.cancelCtx()

	return sm.db.Close()
}

func (sm *EthSenderManagerImpl) GasPriceAdjuster() core.GasPriceAdjuster {
	return sm.adjuster
}

func (sm *EthSenderManagerImpl) Database() core.Database {
	return sm.db
}
