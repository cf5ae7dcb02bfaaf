package controllers

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
	apiCore "github.com/orbitl2/operator/api/core"
	"github.com/orbitl2/operator/api/model/response"
	apiUtils "github.com/orbitl2/operator/api/utils"
	senderCore "github.com/orbitl2/operator/ethsender/core"
)

type GasPriceControllerImpl struct {
	adjuster senderCore.GasPriceAdjuster
	db       senderCore.Database
	logger   hclog.Logger
}

var _ apiCore.APIController = (*GasPriceControllerImpl)(nil)

func NewGasPriceController(
	adjuster senderCore.GasPriceAdjuster, db senderCore.Database, logger hclog.Logger,
) *GasPriceControllerImpl {
	return &GasPriceControllerImpl{
		adjuster: adjuster,
		db:       db,
		logger:   logger,
	}
}

func (*GasPriceControllerImpl) GetPathPrefix() string {
	return "GasPrice"
}

func (c *GasPriceControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "GetState", Method: http.MethodGet, Handler: c.getState, APIKeyAuth: true},
	}
}

func (c *GasPriceControllerImpl) getState(w http.ResponseWriter, r *http.Request) {
	c.logger.Debug("getState request", "url", r.URL)

	lastSubmitted := ""

	lastPrice, err := c.db.GetLastSubmittedGasPrice()
	if err != nil {
		c.logger.Error("failed to retrieve last submitted gas price", "err", err)
	} else if lastPrice != nil {
		lastSubmitted = lastPrice.String()
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.GasPriceStateResponse{
		GasPriceLimit:         c.adjuster.GasPriceLimit().String(),
		SamplesCount:          c.adjuster.SamplesCount(),
		SamplesAmount:         c.adjuster.SamplesAmount(),
		LastSubmittedGasPrice: lastSubmitted,
	}, c.logger)
}
