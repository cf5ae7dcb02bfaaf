package response

type ErrorResponse struct {
	Err string `json:"err"`
}

// GasPriceStateResponse reports the gas adjuster's current view: the
// adaptive price limit, the sampling progress of the running cycle and the
// price used for the most recent submission.
type GasPriceStateResponse struct {
	GasPriceLimit         string `json:"gasPriceLimit"`
	SamplesCount          int    `json:"samplesCount"`
	SamplesAmount         int    `json:"samplesAmount"`
	LastSubmittedGasPrice string `json:"lastSubmittedGasPrice,omitempty"`
}
