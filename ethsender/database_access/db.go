package databaseaccess

import (
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/orbitl2/operator/common"
)

// NewDatabase opens the sender database and seeds the initial gas price
// limit on the very first run.
func NewDatabase(pathToFile string, initialGasPriceLimit *big.Int) (*BBoltDatabase, error) {
	if err := common.CreateDirectoryIfNotExists(filepath.Dir(pathToFile), 0770); err != nil {
		return nil, fmt.Errorf("failed to create directory for sender database: %w", err)
	}

	db := &BBoltDatabase{}
	if err := db.Init(pathToFile); err != nil {
		return nil, err
	}

	if initialGasPriceLimit != nil {
		if err := db.SeedGasPriceLimit(initialGasPriceLimit); err != nil {
			return nil, err
		}
	}

	return db, nil
}
