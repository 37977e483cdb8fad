package paperchain

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length in bytes of a paper content hash.
const HashSize = 32

// Hash is the content fingerprint of a paper. It is the primary key of the
// registry: two papers with the same hash are the same paper. The zero value
// is the invalid sentinel and is never a valid key.
type Hash [HashSize]byte

// ParseHash decodes a hex-encoded hash. Short input is left-padded with
// zeroes so that truncated fingerprints coming from test fixtures or CLI
// arguments still map to a full-width key.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash %q: %v", s, err)
	}
	if len(data) > HashSize {
		return Hash{}, fmt.Errorf("invalid hash %q: %d bytes, expected at most %d", s, len(data), HashSize)
	}
	copy(h[HashSize-len(data):], data)
	return h, nil
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the invalid sentinel.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(data []byte) error {
	parsed, err := ParseHash(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Principal identifies a caller, a creator or the authority. Identities are
// authenticated by the surrounding environment; the registry only compares
// them.
type Principal string

// NullPrincipal is the reserved null identity. It can never be bound as the
// authority and is never a valid creator.
const NullPrincipal Principal = ""

// Paper is the registry record bound to a content hash.
//
// Creator, Timestamp and FundingGoal are immutable after registration.
// FundedAmount is reserved for a future funding-contribution transition and
// stays at 0. IsActive only ever goes from true to false.
type Paper struct {
	Creator      Principal `json:"creator"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Timestamp    uint64    `json:"timestamp"`
	FundingGoal  uint64    `json:"fundingGoal"`
	FundedAmount uint64    `json:"fundedAmount"`
	IsActive     bool      `json:"isActive"`
}
