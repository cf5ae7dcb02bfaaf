package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/ethsender/core"
)

// TxSubmitterImpl builds a legacy transaction around the payload with the
// decided gas price and sends it. A resubmission of the same payload reuses
// the first attempt's nonce, so the new transaction replaces the stuck one
// instead of queueing behind it.
type TxSubmitterImpl struct {
	nodeURL string
	wallet  *TxWallet
	client  *ethclient.Client
	chainID *big.Int

	nonces   map[uint64]uint64
	lastTxes map[uint64]common.Hash

	lock   sync.Mutex
	logger hclog.Logger
}

var _ core.TxSubmitter = (*TxSubmitterImpl)(nil)

func NewTxSubmitter(nodeURL string, wallet *TxWallet, logger hclog.Logger) *TxSubmitterImpl {
	return &TxSubmitterImpl{
		nodeURL:  nodeURL,
		wallet:   wallet,
		nonces:   map[uint64]uint64{},
		lastTxes: map[uint64]common.Hash{},
		logger:   logger,
	}
}

func (s *TxSubmitterImpl) Submit(ctx context.Context, payload *core.TxPayload, gasPrice *big.Int) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to node: %w", err)
	}

	nonce, err := s.getNonce(ctx, client, payload.ID)
	if err != nil {
		return fmt.Errorf("failed to retrieve nonce: %w", err)
	}

	to := common.HexToAddress(payload.To)

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      payload.GasLimit,
		GasPrice: gasPrice,
		Data:     payload.Data,
	})

	signedTx, err := s.wallet.SignTx(s.chainID, tx)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	s.lock.Lock()
	s.lastTxes[payload.ID] = signedTx.Hash()
	s.lock.Unlock()

	s.logger.Debug("transaction sent",
		"id", payload.ID, "hash", signedTx.Hash(), "nonce", nonce, "gasPrice", gasPrice)

	return nil
}

func (s *TxSubmitterImpl) GetTxStatus(ctx context.Context, payload *core.TxPayload) (core.TxStatus, error) {
	s.lock.Lock()
	hash, exists := s.lastTxes[payload.ID]
	s.lock.Unlock()

	if !exists {
		// nothing was accepted by the pool for this payload
		return core.TxStatusDropped, nil
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return core.TxStatusDropped, fmt.Errorf("failed to connect to node: %w", err)
	}

	_, pending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			// evicted from the pool without being mined
			s.forget(payload.ID)

			return core.TxStatusDropped, nil
		}

		return core.TxStatusDropped, fmt.Errorf("failed to retrieve transaction %s: %w", hash, err)
	}

	if pending {
		return core.TxStatusPending, nil
	}

	s.forget(payload.ID)

	return core.TxStatusSettled, nil
}

func (s *TxSubmitterImpl) getNonce(ctx context.Context, client *ethclient.Client, payloadID uint64) (uint64, error) {
	s.lock.Lock()
	nonce, exists := s.nonces[payloadID]
	s.lock.Unlock()

	if exists {
		return nonce, nil
	}

	nonce, err := client.PendingNonceAt(ctx, s.wallet.GetAddress())
	if err != nil {
		return 0, err
	}

	s.lock.Lock()
	s.nonces[payloadID] = nonce
	s.lock.Unlock()

	return nonce, nil
}

func (s *TxSubmitterImpl) forget(payloadID uint64) {
	s.lock.Lock()
	delete(s.nonces, payloadID)
	delete(s.lastTxes, payloadID)
	s.lock.Unlock()
}

func (s *TxSubmitterImpl) getClient(ctx context.Context) (*ethclient.Client, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := ethclient.DialContext(ctx, s.nodeURL)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()

		return nil, err
	}

	s.client = client
	s.chainID = chainID

	return client, nil
}
