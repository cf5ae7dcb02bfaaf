package core

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
)

type GasPriceOracleMock struct {
	mock.Mock
}

var _ GasPriceOracle = (*GasPriceOracleMock)(nil)

func (m *GasPriceOracleMock) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*big.Int), args.Error(1)
}

type DatabaseMock struct {
	mock.Mock
}

var _ Database = (*DatabaseMock)(nil)

func (m *DatabaseMock) Init(filePath string) error {
	return nil
}

func (m *DatabaseMock) Close() error {
	return nil
}

func (m *DatabaseMock) LoadGasPriceLimit() (*big.Int, error) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *DatabaseMock) UpdateGasPriceLimit(value *big.Int) error {
	return m.Called(value).Error(0)
}

func (m *DatabaseMock) AddLastSubmittedGasPrice(price *big.Int) error {
	return m.Called(price).Error(0)
}

func (m *DatabaseMock) GetLastSubmittedGasPrice() (*big.Int, error) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*big.Int), args.Error(1)
}

type TxSourceMock struct {
	mock.Mock
}

var _ TxSource = (*TxSourceMock)(nil)

func (m *TxSourceMock) NextPayload(ctx context.Context) (*TxPayload, error) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*TxPayload), args.Error(1)
}

type TxSubmitterMock struct {
	mock.Mock
}

var _ TxSubmitter = (*TxSubmitterMock)(nil)

func (m *TxSubmitterMock) Submit(ctx context.Context, payload *TxPayload, gasPrice *big.Int) error {
	return m.Called(payload, gasPrice).Error(0)
}

func (m *TxSubmitterMock) GetTxStatus(ctx context.Context, payload *TxPayload) (TxStatus, error) {
	args := m.Called(payload)

	return args.Get(0).(TxStatus), args.Error(1)
}
