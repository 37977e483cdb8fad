package bolt

import (
	"errors"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/bobinette/paperchain"
)

var accountBucket = []byte("accounts")

// Ledger is a bolt-backed balance store. It lives in its own database file:
// the ledger is an external collaborator of the registry, and its transfers
// are invoked from inside registry transactions, so the two must not share a
// bolt handle.
type Ledger struct {
	store *bolt.DB
}

// Open opens the connection to the ledger database defined by path.
func (l *Ledger) Open(path string) error {
	if l.store != nil {
		return errors.New("ledger already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(accountBucket)
		return err
	})
	if err != nil {
		store.Close()
		return err
	}

	l.store = store
	return nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	if l.store != nil {
		err := l.store.Close()
		l.store = nil
		return err
	}
	return nil
}

// Credit adds funds to an account. Used to seed balances.
func (l *Ledger) Credit(p paperchain.Principal, amount uint64) error {
	return l.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(accountBucket)
		return bucket.Put([]byte(p), itob(balance(bucket, p)+amount))
	})
}

func (l *Ledger) Balance(p paperchain.Principal) (uint64, error) {
	var b uint64
	err := l.store.View(func(tx *bolt.Tx) error {
		b = balance(tx.Bucket(accountBucket), p)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return b, nil
}

// Transfer moves amount from one account to the other. It either moves the
// full amount or fails without touching either account.
func (l *Ledger) Transfer(amount uint64, from, to paperchain.Principal) error {
	return l.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(accountBucket)

		fromBalance := balance(bucket, from)
		if fromBalance < amount {
			return fmt.Errorf("insufficient funds: %s has %d, needs %d", from, fromBalance, amount)
		}

		if err := bucket.Put([]byte(from), itob(fromBalance-amount)); err != nil {
			return err
		}
		return bucket.Put([]byte(to), itob(balance(bucket, to)+amount))
	})
}

func balance(bucket *bolt.Bucket, p paperchain.Principal) uint64 {
	data := bucket.Get([]byte(p))
	if data == nil {
		return 0
	}
	return btoi(data)
}
