package paperchain

import (
	"fmt"
	"sync"
)

// InMemRegistryStore keeps the registry state in maps. It backs tests and the
// CLI dry-run mode; the bolt package provides the persistent implementation.
type InMemRegistryStore struct {
	mu    sync.Mutex
	state inMemState
}

type inMemState struct {
	papers    map[Hash]Paper
	ids       map[Hash]uint64
	lastID    uint64
	authority Principal
	fee       uint64
}

func NewInMemRegistryStore() *InMemRegistryStore {
	return &InMemRegistryStore{
		state: inMemState{
			papers: make(map[Hash]Paper),
			ids:    make(map[Hash]uint64),
			fee:    DefaultRegistrationFee,
		},
	}
}

func (s *InMemRegistryStore) View(f func(RegistryTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &inMemTx{state: s.state.clone()}
	return f(tx)
}

// Update runs f against a copy of the state and only swaps the copy in when f
// succeeds, so a failed transition leaves no partial writes behind.
func (s *InMemRegistryStore) Update(f func(RegistryTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &inMemTx{state: s.state.clone()}
	if err := f(tx); err != nil {
		return err
	}

	s.state = tx.state
	return nil
}

func (s inMemState) clone() inMemState {
	papers := make(map[Hash]Paper, len(s.papers))
	for h, p := range s.papers {
		papers[h] = p
	}
	ids := make(map[Hash]uint64, len(s.ids))
	for h, id := range s.ids {
		ids[h] = id
	}

	c := s
	c.papers = papers
	c.ids = ids
	return c
}

type inMemTx struct {
	state inMemState
}

func (tx *inMemTx) Paper(h Hash) (*Paper, error) {
	p, ok := tx.state.papers[h]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (tx *inMemTx) PutPaper(h Hash, p *Paper) error {
	tx.state.papers[h] = *p
	return nil
}

func (tx *inMemTx) PaperID(h Hash) (uint64, bool, error) {
	id, ok := tx.state.ids[h]
	return id, ok, nil
}

func (tx *inMemTx) PutPaperID(h Hash, id uint64) error {
	tx.state.ids[h] = id
	return nil
}

func (tx *inMemTx) LastID() (uint64, error) {
	return tx.state.lastID, nil
}

func (tx *inMemTx) SetLastID(id uint64) error {
	tx.state.lastID = id
	return nil
}

func (tx *inMemTx) Authority() (Principal, error) {
	return tx.state.authority, nil
}

func (tx *inMemTx) SetAuthority(p Principal) error {
	tx.state.authority = p
	return nil
}

func (tx *inMemTx) RegistrationFee() (uint64, error) {
	return tx.state.fee, nil
}

func (tx *inMemTx) SetRegistrationFee(fee uint64) error {
	tx.state.fee = fee
	return nil
}

// InMemLedger is a balance map with the same transfer semantics as the bolt
// ledger: a transfer either moves the full amount or fails without touching
// either account.
type InMemLedger struct {
	mu       sync.Mutex
	balances map[Principal]uint64
}

func NewInMemLedger() *InMemLedger {
	return &InMemLedger{balances: make(map[Principal]uint64)}
}

// Credit adds funds to an account. Used to seed balances.
func (l *InMemLedger) Credit(p Principal, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[p] += amount
}

func (l *InMemLedger) Balance(p Principal) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[p]
}

func (l *InMemLedger) Transfer(amount uint64, from, to Principal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("insufficient funds: %s has %d, needs %d", from, l.balances[from], amount)
	}

	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// InMemEventSink records events in order. Tests use it to assert on emission.
type InMemEventSink struct {
	mu     sync.Mutex
	events []Event
}

func NewInMemEventSink() *InMemEventSink {
	return &InMemEventSink{}
}

func (s *InMemEventSink) Emit(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *InMemEventSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}
