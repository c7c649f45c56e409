package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var rowBucket = []byte("rows")

// rowCache stores finished rows in a bolt file so an interrupted or
// extended sweep only samples the primes it has not seen.
type rowCache struct {
	db *bolt.DB
}

func openCache(path string) (*rowCache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rowBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &rowCache{db: db}, nil
}

// cacheKey names a row by every input that changes its content.
func cacheKey(p uint64, o sweepOpts) []byte {
	return []byte(fmt.Sprintf("%s/%d/%d/%d/%t/%d", seedLabel, o.seed, o.degree, o.trials, o.monic, p))
}

func (c *rowCache) get(p uint64, o sweepOpts) (row, bool, error) {
	var (
		r  row
		ok bool
	)
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(rowBucket).Get(cacheKey(p, o))
		if data == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(data, &r)
	})
	return r, ok, err
}

func (c *rowCache) put(r row, o sweepOpts) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(rowBucket).Put(cacheKey(r.P, o), data)
	})
}

func (c *rowCache) Close() error {
	return c.db.Close()
}
