package databaseaccess

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/orbitl2/operator/ethsender/core"
	"go.etcd.io/bbolt"
)

var (
	gasPriceLimitBucket      = []byte("GasPriceLimit")
	lastSubmittedBucket      = []byte("LastSubmitted")
	gasPriceLimitKey         = []byte("gas_price_limit")
	lastSubmittedGasPriceKey = []byte("last_submitted_gas_price")
)

var ErrGasPriceLimitNotFound = errors.New("gas price limit not found in database")

type BBoltDatabase struct {
	db *bbolt.DB
}

var _ core.Database = (*BBoltDatabase)(nil)

func (bd *BBoltDatabase) Init(filePath string) error {
	db, err := bbolt.Open(filePath, 0660, nil)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}

	bd.db = db

	return db.Update(func(tx *bbolt.Tx) error {
		for _, bn := range [][]byte{gasPriceLimitBucket, lastSubmittedBucket} {
			_, err := tx.CreateBucketIfNotExists(bn)
			if err != nil {
				return fmt.Errorf("could not bucket: %s, err: %w", string(bn), err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) Close() error {
	return bd.db.Close()
}

// LoadGasPriceLimit fails if no limit has ever been stored. The limit bounds
// the operator's fee spend, so there is no silent default.
func (bd *BBoltDatabase) LoadGasPriceLimit() (*big.Int, error) {
	var result *big.Int

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(gasPriceLimitBucket).Get(gasPriceLimitKey)
		if bytes == nil {
			return ErrGasPriceLimitNotFound
		}

		result = new(big.Int)
		if err := result.UnmarshalText(bytes); err != nil {
			return fmt.Errorf("could not unmarshal gas price limit: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (bd *BBoltDatabase) UpdateGasPriceLimit(value *big.Int) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bytes, err := value.MarshalText()
		if err != nil {
			return fmt.Errorf("could not marshal gas price limit: %w", err)
		}

		if err := tx.Bucket(gasPriceLimitBucket).Put(gasPriceLimitKey, bytes); err != nil {
			return fmt.Errorf("gas price limit write error: %w", err)
		}

		return nil
	})
}

// SeedGasPriceLimit stores the value only if no limit is persisted yet.
func (bd *BBoltDatabase) SeedGasPriceLimit(value *big.Int) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(gasPriceLimitBucket)
		if bucket.Get(gasPriceLimitKey) != nil {
			return nil
		}

		bytes, err := value.MarshalText()
		if err != nil {
			return fmt.Errorf("could not marshal gas price limit: %w", err)
		}

		if err := bucket.Put(gasPriceLimitKey, bytes); err != nil {
			return fmt.Errorf("gas price limit write error: %w", err)
		}

		return nil
	})
}

func (bd *BBoltDatabase) AddLastSubmittedGasPrice(price *big.Int) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bytes, err := price.MarshalText()
		if err != nil {
			return fmt.Errorf("could not marshal last submitted gas price: %w", err)
		}

		if err := tx.Bucket(lastSubmittedBucket).Put(lastSubmittedGasPriceKey, bytes); err != nil {
			return fmt.Errorf("last submitted gas price write error: %w", err)
		}

		return nil
	})
}

func (bd *BBoltDatabase) GetLastSubmittedGasPrice() (*big.Int, error) {
	var result *big.Int

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(lastSubmittedBucket).Get(lastSubmittedGasPriceKey)
		if bytes == nil {
			return nil
		}

		result = new(big.Int)
		if err := result.UnmarshalText(bytes); err != nil {
			return fmt.Errorf("could not unmarshal last submitted gas price: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
