package bolt

import (
	"os"
	"testing"
)

func createLedger(t *testing.T) (*Ledger, func()) {
	tmpFile, err := os.CreateTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	ledger := &Ledger{}
	if err := ledger.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open ledger on file %s: %v", filename, err)
	}

	return ledger, func() {
		ledger.Close()
		os.Remove(filename)
	}
}

func TestLedger_creditAndTransfer(t *testing.T) {
	ledger, f := createLedger(t)
	defer f()

	if err := ledger.Credit("ST1TEST", 2000); err != nil {
		t.Fatal("error crediting:", err)
	}

	if err := ledger.Transfer(1000, "ST1TEST", "ST2TEST"); err != nil {
		t.Fatal("error transferring:", err)
	}

	from, err := ledger.Balance("ST1TEST")
	if err != nil {
		t.Fatal("error getting balance:", err)
	} else if from != 1000 {
		t.Fatalf("incorrect balance: expected 1000 got %d", from)
	}

	to, err := ledger.Balance("ST2TEST")
	if err != nil {
		t.Fatal("error getting balance:", err)
	} else if to != 1000 {
		t.Fatalf("incorrect balance: expected 1000 got %d", to)
	}
}

func TestLedger_insufficientFunds(t *testing.T) {
	ledger, f := createLedger(t)
	defer f()

	if err := ledger.Credit("ST1TEST", 500); err != nil {
		t.Fatal("error crediting:", err)
	}

	if err := ledger.Transfer(1000, "ST1TEST", "ST2TEST"); err == nil {
		t.Fatal("expected transfer to fail")
	}

	// neither account should have moved
	from, err := ledger.Balance("ST1TEST")
	if err != nil {
		t.Fatal("error getting balance:", err)
	} else if from != 500 {
		t.Fatalf("incorrect balance: expected 500 got %d", from)
	}

	to, err := ledger.Balance("ST2TEST")
	if err != nil {
		t.Fatal("error getting balance:", err)
	} else if to != 0 {
		t.Fatalf("incorrect balance: expected 0 got %d", to)
	}
}
