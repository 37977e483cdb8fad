package paperchain

import (
	"errors"
	"testing"
)

func TestInMemRegistryStore_updateRollsBackOnError(t *testing.T) {
	store := NewInMemRegistryStore()
	hash, err := ParseHash("abc123")
	if err != nil {
		t.Fatal("could not parse hash:", err)
	}

	boom := errors.New("boom")
	err = store.Update(func(tx RegistryTx) error {
		if err := tx.PutPaper(hash, &Paper{Title: "Test"}); err != nil {
			return err
		}
		if err := tx.SetLastID(4); err != nil {
			return err
		}
		return boom
	})
	if err != boom {
		t.Fatalf("expected boom, got %v", err)
	}

	err = store.View(func(tx RegistryTx) error {
		paper, err := tx.Paper(hash)
		if err != nil {
			return err
		}
		if paper != nil {
			t.Fatalf("write should have been discarded, got %+v", *paper)
		}

		lastID, err := tx.LastID()
		if err != nil {
			return err
		}
		if lastID != 0 {
			t.Fatalf("last id should have been discarded, got %d", lastID)
		}

		return nil
	})
	if err != nil {
		t.Fatal("error viewing:", err)
	}
}

func TestInMemLedger_transfer(t *testing.T) {
	ledger := NewInMemLedger()
	ledger.Credit("alice", 100)

	if err := ledger.Transfer(60, "alice", "bob"); err != nil {
		t.Fatal("error transferring:", err)
	}
	if b := ledger.Balance("alice"); b != 40 {
		t.Fatalf("incorrect balance: expected 40 got %d", b)
	}
	if b := ledger.Balance("bob"); b != 60 {
		t.Fatalf("incorrect balance: expected 60 got %d", b)
	}

	if err := ledger.Transfer(100, "alice", "bob"); err == nil {
		t.Fatal("expected transfer to fail")
	}
	if b := ledger.Balance("alice"); b != 40 {
		t.Fatalf("balance moved on failed transfer: got %d", b)
	}
}
