package registry

import (
	"unicode/utf8"

	"github.com/bobinette/paperchain"
	"github.com/bobinette/paperchain/errors"
)

// Bounds on paper metadata, in unicode code points.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Service is the registry state-transition function. Every mutating method is
// a single all-or-nothing transition: validations run before any write, and a
// failed transition leaves the store untouched.
//
// Caller identity and height are explicit parameters, supplied by whatever
// environment hosts the service (HTTP adapter, CLI, tests). The service never
// authenticates callers; it only compares identities.
type Service struct {
	store  paperchain.RegistryStore
	ledger paperchain.Ledger
	events paperchain.EventSink
}

func NewService(store paperchain.RegistryStore, ledger paperchain.Ledger, events paperchain.EventSink) *Service {
	return &Service{
		store:  store,
		ledger: ledger,
		events: events,
	}
}

// SetAuthority binds the fee-receiving authority. The binding is one-shot:
// once an authority is set it can never change, and every later call fails.
func (s *Service) SetAuthority(candidate paperchain.Principal) error {
	if candidate == paperchain.NullPrincipal {
		return errors.New("authority cannot be the null principal", errors.InvalidPrincipal())
	}

	return s.store.Update(func(tx paperchain.RegistryTx) error {
		authority, err := tx.Authority()
		if err != nil {
			return err
		}
		if authority != paperchain.NullPrincipal {
			return errors.New("authority is already set", errors.NotAuthorized())
		}

		return tx.SetAuthority(candidate)
	})
}

// SetRegistrationFee replaces the registration fee. It only requires that an
// authority exists, not that the caller is the authority: any caller may
// change the fee once an authority is configured. That asymmetry is part of
// the external contract and is covered by tests; do not tighten it here.
func (s *Service) SetRegistrationFee(fee uint64) error {
	return s.store.Update(func(tx paperchain.RegistryTx) error {
		authority, err := tx.Authority()
		if err != nil {
			return err
		}
		if authority == paperchain.NullPrincipal {
			return errors.New("no authority configured", errors.NotAuthorized())
		}

		return tx.SetRegistrationFee(fee)
	})
}

// Register creates the Paper and id records for a new content hash and
// charges the registration fee from caller to authority. The fee transfer and
// the writes commit or abort together: a failed transfer leaves no record,
// and ids are only consumed by successful registrations.
func (s *Service) Register(caller paperchain.Principal, height uint64, hash paperchain.Hash, title, description string, fundingGoal uint64) (uint64, error) {
	if hash.IsZero() {
		return 0, errors.New("hash is empty", errors.InvalidHash())
	}
	if err := validateTitle(title); err != nil {
		return 0, err
	}
	if err := validateDescription(description); err != nil {
		return 0, err
	}
	if fundingGoal == 0 {
		return 0, errors.New("funding goal must be positive", errors.InvalidFundingGoal())
	}

	var id uint64
	err := s.store.Update(func(tx paperchain.RegistryTx) error {
		existing, err := tx.Paper(hash)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.New("hash is already registered", errors.DuplicateHash())
		}

		authority, err := tx.Authority()
		if err != nil {
			return err
		}
		if authority == paperchain.NullPrincipal {
			return errors.New("no authority configured", errors.NotAuthorized())
		}

		fee, err := tx.RegistrationFee()
		if err != nil {
			return err
		}
		if err := s.ledger.Transfer(fee, caller, authority); err != nil {
			return errors.New("fee transfer failed", errors.WithCause(err))
		}

		lastID, err := tx.LastID()
		if err != nil {
			return err
		}
		id = lastID + 1

		paper := paperchain.Paper{
			Creator:     caller,
			Title:       title,
			Description: description,
			Timestamp:   height,
			FundingGoal: fundingGoal,
			IsActive:    true,
		}
		if err := tx.PutPaper(hash, &paper); err != nil {
			return err
		}
		if err := tx.PutPaperID(hash, id); err != nil {
			return err
		}

		return tx.SetLastID(id)
	})
	if err != nil {
		return 0, err
	}

	err = s.events.Emit(paperchain.Event{
		Kind: paperchain.EventPaperRegistered,
		Hash: hash,
		ID:   id,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// VerifyOwnership reports whether caller is the creator of the paper. It is
// an identity comparison, not a proof: a false result is not an error.
func (s *Service) VerifyOwnership(caller paperchain.Principal, hash paperchain.Hash) (bool, error) {
	var owned bool
	err := s.store.View(func(tx paperchain.RegistryTx) error {
		paper, err := tx.Paper(hash)
		if err != nil {
			return err
		}
		if paper == nil {
			return errors.New("no paper for hash", errors.PaperNotFound())
		}

		owned = paper.Creator == caller
		return nil
	})
	if err != nil {
		return false, err
	}

	return owned, nil
}

// UpdateMetadata replaces the title and description of a paper. Only the
// creator may call it; every other field is preserved as registered.
func (s *Service) UpdateMetadata(caller paperchain.Principal, hash paperchain.Hash, title, description string) error {
	err := s.store.Update(func(tx paperchain.RegistryTx) error {
		paper, err := tx.Paper(hash)
		if err != nil {
			return err
		}
		if paper == nil {
			return errors.New("no paper for hash", errors.PaperNotFound())
		}
		if paper.Creator != caller {
			return errors.New("caller is not the creator", errors.NotAuthorized())
		}
		if err := validateTitle(title); err != nil {
			return err
		}
		if err := validateDescription(description); err != nil {
			return err
		}

		paper.Title = title
		paper.Description = description
		return tx.PutPaper(hash, paper)
	})
	if err != nil {
		return err
	}

	return s.events.Emit(paperchain.Event{
		Kind: paperchain.EventPaperUpdated,
		Hash: hash,
	})
}

// Deactivate marks a paper inactive. Only the creator may call it, and there
// is no way back: no operation reactivates a paper.
func (s *Service) Deactivate(caller paperchain.Principal, hash paperchain.Hash) error {
	err := s.store.Update(func(tx paperchain.RegistryTx) error {
		paper, err := tx.Paper(hash)
		if err != nil {
			return err
		}
		if paper == nil {
			return errors.New("no paper for hash", errors.PaperNotFound())
		}
		if paper.Creator != caller {
			return errors.New("caller is not the creator", errors.NotAuthorized())
		}

		paper.IsActive = false
		return tx.PutPaper(hash, paper)
	})
	if err != nil {
		return err
	}

	return s.events.Emit(paperchain.Event{
		Kind: paperchain.EventPaperDeactivated,
		Hash: hash,
	})
}

// Get retrieves the paper registered under hash. It returns nil if no paper
// can be found, without an error.
func (s *Service) Get(hash paperchain.Hash) (*paperchain.Paper, error) {
	var paper *paperchain.Paper
	err := s.store.View(func(tx paperchain.RegistryTx) error {
		var err error
		paper, err = tx.Paper(hash)
		return err
	})
	if err != nil {
		return nil, err
	}

	return paper, nil
}

// ID retrieves the id assigned to hash at registration. ok is false if the
// hash is not registered.
func (s *Service) ID(hash paperchain.Hash) (id uint64, ok bool, err error) {
	err = s.store.View(func(tx paperchain.RegistryTx) error {
		var err error
		id, ok, err = tx.PaperID(hash)
		return err
	})
	if err != nil {
		return 0, false, err
	}

	return id, ok, nil
}

// LastID returns the id of the most recent registration, which is also the
// count of successful registrations.
func (s *Service) LastID() (uint64, error) {
	var id uint64
	err := s.store.View(func(tx paperchain.RegistryTx) error {
		var err error
		id, err = tx.LastID()
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Service) RegistrationFee() (uint64, error) {
	var fee uint64
	err := s.store.View(func(tx paperchain.RegistryTx) error {
		var err error
		fee, err = tx.RegistrationFee()
		return err
	})
	if err != nil {
		return 0, err
	}

	return fee, nil
}

func (s *Service) IsRegistered(hash paperchain.Hash) (bool, error) {
	paper, err := s.Get(hash)
	if err != nil {
		return false, err
	}

	return paper != nil, nil
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n == 0 || n > TitleMaxLen {
		return errors.New("title must be 1 to 100 characters", errors.InvalidTitle())
	}
	return nil
}

func validateDescription(description string) error {
	if n := utf8.RuneCountInString(description); n == 0 || n > DescriptionMaxLen {
		return errors.New("description must be 1 to 500 characters", errors.InvalidDescription())
	}
	return nil
}
