package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/bobinette/paperchain"
)

// Singleton keys in the registry bucket.
var (
	lastIDKey    = []byte("last_id")
	authorityKey = []byte("authority")
	feeKey       = []byte("registration_fee")
)

// RegistryStore persists the registry state in bolt: one bucket per keyed
// store (papers, paper_ids) and a registry bucket for the singletons. Each
// core operation maps onto a single bolt transaction, which is what makes the
// transitions all-or-nothing.
type RegistryStore struct {
	Driver *Driver
}

func (s *RegistryStore) View(f func(paperchain.RegistryTx) error) error {
	return s.Driver.store.View(func(tx *bolt.Tx) error {
		return f(&registryTx{tx: tx})
	})
}

func (s *RegistryStore) Update(f func(paperchain.RegistryTx) error) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return f(&registryTx{tx: tx})
	})
}

type registryTx struct {
	tx *bolt.Tx
}

func (t *registryTx) Paper(h paperchain.Hash) (*paperchain.Paper, error) {
	data := t.tx.Bucket(paperBucket).Get(h[:])
	if data == nil {
		return nil, nil
	}

	var paper paperchain.Paper
	if err := json.Unmarshal(data, &paper); err != nil {
		return nil, err
	}

	return &paper, nil
}

func (t *registryTx) PutPaper(h paperchain.Hash, paper *paperchain.Paper) error {
	data, err := json.Marshal(paper)
	if err != nil {
		return err
	}

	return t.tx.Bucket(paperBucket).Put(h[:], data)
}

func (t *registryTx) PaperID(h paperchain.Hash) (uint64, bool, error) {
	data := t.tx.Bucket(paperIDBucket).Get(h[:])
	if data == nil {
		return 0, false, nil
	}

	return btoi(data), true, nil
}

func (t *registryTx) PutPaperID(h paperchain.Hash, id uint64) error {
	return t.tx.Bucket(paperIDBucket).Put(h[:], itob(id))
}

func (t *registryTx) LastID() (uint64, error) {
	data := t.tx.Bucket(registryBucket).Get(lastIDKey)
	if data == nil {
		return 0, nil
	}

	return btoi(data), nil
}

func (t *registryTx) SetLastID(id uint64) error {
	return t.tx.Bucket(registryBucket).Put(lastIDKey, itob(id))
}

func (t *registryTx) Authority() (paperchain.Principal, error) {
	data := t.tx.Bucket(registryBucket).Get(authorityKey)
	return paperchain.Principal(data), nil
}

func (t *registryTx) SetAuthority(p paperchain.Principal) error {
	return t.tx.Bucket(registryBucket).Put(authorityKey, []byte(p))
}

func (t *registryTx) RegistrationFee() (uint64, error) {
	data := t.tx.Bucket(registryBucket).Get(feeKey)
	if data == nil {
		return paperchain.DefaultRegistrationFee, nil
	}

	return btoi(data), nil
}

func (t *registryTx) SetRegistrationFee(fee uint64) error {
	return t.tx.Bucket(registryBucket).Put(feeKey, itob(fee))
}
