package controllers

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/api/model/response"
	senderCore "github.com/orbitl2/operator/ethsender/core"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gasPriceAdjusterMock struct {
	mock.Mock
}

var _ senderCore.GasPriceAdjuster = (*gasPriceAdjusterMock)(nil)

func (m *gasPriceAdjusterMock) GetGasPrice(
	_ context.Context, _ senderCore.GasPriceOracle, _ *big.Int,
) (*big.Int, error) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *gasPriceAdjusterMock) KeepUpdated(_ senderCore.Database) error {
	return m.Called().Error(0)
}

func (m *gasPriceAdjusterMock) SamplesAmount() int {
	return m.Called().Int(0)
}

func (m *gasPriceAdjusterMock) SamplesCount() int {
	return m.Called().Int(0)
}

func (m *gasPriceAdjusterMock) GasPriceLimit() *big.Int {
	return m.Called().Get(0).(*big.Int)
}

func TestGasPriceController(t *testing.T) {
	t.Parallel()

	adjuster := &gasPriceAdjusterMock{}
	adjuster.On("GasPriceLimit").Return(big.NewInt(1500))
	adjuster.On("SamplesCount").Return(4)
	adjuster.On("SamplesAmount").Return(10)

	db := &senderCore.DatabaseMock{}
	db.On("GetLastSubmittedGasPrice").Return(big.NewInt(1200), nil)

	controller := NewGasPriceController(adjuster, db, hclog.NewNullLogger())

	require.Equal(t, "GasPrice", controller.GetPathPrefix())

	endpoints := controller.GetEndpoints()
	require.Len(t, endpoints, 1)
	require.Equal(t, "GetState", endpoints[0].Path)
	require.Equal(t, http.MethodGet, endpoints[0].Method)

	req := httptest.NewRequest(http.MethodGet, "/api/GasPrice/GetState", nil)
	rec := httptest.NewRecorder()

	endpoints[0].Handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var state response.GasPriceStateResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	require.Equal(t, response.GasPriceStateResponse{
		GasPriceLimit:         "1500",
		SamplesCount:          4,
		SamplesAmount:         10,
		LastSubmittedGasPrice: "1200",
	}, state)
}
