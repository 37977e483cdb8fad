package paperchain

// DefaultRegistrationFee is the fee charged per registration until the
// authority changes it.
const DefaultRegistrationFee uint64 = 1000

// RegistryTx gives transactional access to the registry state: the two keyed
// stores (papers and ids, both keyed by hash) and the three singletons
// (last id, authority, registration fee).
//
// Absence is reported as a nil paper or a false ok flag, never as an error;
// errors are reserved for the storage layer itself.
type RegistryTx interface {
	Paper(Hash) (*Paper, error)
	PutPaper(Hash, *Paper) error

	PaperID(Hash) (uint64, bool, error)
	PutPaperID(Hash, uint64) error

	LastID() (uint64, error)
	SetLastID(uint64) error

	Authority() (Principal, error)
	SetAuthority(Principal) error

	RegistrationFee() (uint64, error)
	SetRegistrationFee(uint64) error
}

// RegistryStore serializes access to registry state. Update is all-or-nothing:
// if the callback returns an error, every write made through the transaction
// is discarded.
type RegistryStore interface {
	View(func(RegistryTx) error) error
	Update(func(RegistryTx) error) error
}
