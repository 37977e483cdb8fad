package bolt

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/boltdb/bolt"
)

var (
	paperBucket    = []byte("papers")
	paperIDBucket  = []byte("paper_ids")
	registryBucket = []byte("registry")
	eventBucket    = []byte("events")
)

type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			paperBucket,
			paperIDBucket,
			registryBucket,
			eventBucket,
		}
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		store.Close()
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// ------------------------------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------------------------------

// itob returns an 8-byte big endian representation of v.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// btoi is the inverse of itob.
func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
