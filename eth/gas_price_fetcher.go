package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/common"
	"github.com/orbitl2/operator/ethsender/core"
)

// GasPriceFetcher queries the settlement layer node for the currently
// suggested gas price. The client is dialed lazily and dropped on network
// errors so the next call re-dials.
type GasPriceFetcher struct {
	nodeURL string
	client  *ethclient.Client
	lock    sync.Mutex
	logger  hclog.Logger
}

var _ core.GasPriceOracle = (*GasPriceFetcher)(nil)

func NewGasPriceFetcher(nodeURL string, logger hclog.Logger) *GasPriceFetcher {
	return &GasPriceFetcher{
		nodeURL: nodeURL,
		logger:  logger,
	}
}

func (f *GasPriceFetcher) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := f.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to node: %w", err)
	}

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		f.processError(err)

		return nil, fmt.Errorf("failed to retrieve suggested gas price: %w", err)
	}

	return price, nil
}

func (f *GasPriceFetcher) getClient(ctx context.Context) (*ethclient.Client, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	client, err := ethclient.DialContext(ctx, f.nodeURL)
	if err != nil {
		return nil, err
	}

	f.client = client

	return client, nil
}

func (f *GasPriceFetcher) processError(err error) {
	var netErr net.Error

	if errors.Is(err, net.ErrClosed) || common.IsContextDoneErr(err) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		f.lock.Lock()
		f.client = nil
		f.lock.Unlock()

		f.logger.Warn("node connection dropped", "err", err)
	}
}
