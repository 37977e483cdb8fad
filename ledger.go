package paperchain

// Ledger is the external balance-keeping collaborator. The registry invokes
// Transfer exactly once per successful registration, to move the registration
// fee from the caller to the authority. A transfer error aborts the whole
// registration.
type Ledger interface {
	Transfer(amount uint64, from, to Principal) error
}
