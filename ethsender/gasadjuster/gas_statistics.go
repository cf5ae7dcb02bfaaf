package gasadjuster

import "math/big"

// GasStatistics gathers the gas prices actually used for send attempts
// within one adjustment cycle. Samples are kept until drained by the limit
// rescaling, there is no eviction. Not safe for concurrent use on its own,
// GasAdjuster serializes access to it.
type GasStatistics struct {
	samples []*big.Int
}

func NewGasStatistics() *GasStatistics {
	return &GasStatistics{}
}

func (gs *GasStatistics) Add(price *big.Int) {
	gs.samples = append(gs.samples, new(big.Int).Set(price))
}

func (gs *GasStatistics) Len() int {
	return len(gs.samples)
}

// DrainAndClear returns all gathered samples and starts a fresh cycle.
func (gs *GasStatistics) DrainAndClear() []*big.Int {
	samples := gs.samples
	gs.samples = nil

	return samples
}

// Restore puts drained samples back in front of any samples gathered in the
// meantime. Used when persisting the rescaled limit fails, so the basis for
// the next rescale is not discarded.
func (gs *GasStatistics) Restore(samples []*big.Int) {
	gs.samples = append(samples, gs.samples...)
}
