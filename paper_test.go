package paperchain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseHash(t *testing.T) {
	tts := []struct {
		in    string
		valid bool
		zero  bool
	}{
		{in: "abc123", valid: true},
		{in: "0xabc123", valid: true},
		{in: "abc12", valid: true}, // odd length is left-padded
		{in: strings.Repeat("ab", HashSize), valid: true},
		{in: "", valid: true, zero: true},
		{in: "00", valid: true, zero: true},
		{in: "not hex", valid: false},
		{in: strings.Repeat("ab", HashSize+1), valid: false},
	}

	for _, tt := range tts {
		h, err := ParseHash(tt.in)
		if tt.valid && err != nil {
			t.Errorf("ParseHash(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if !tt.valid {
			if err == nil {
				t.Errorf("ParseHash(%q): expected error", tt.in)
			}
			continue
		}

		if h.IsZero() != tt.zero {
			t.Errorf("ParseHash(%q): IsZero = %v, expected %v", tt.in, h.IsZero(), tt.zero)
		}
	}
}

func TestParseHash_prefixEquivalence(t *testing.T) {
	a, err := ParseHash("abc123")
	if err != nil {
		t.Fatal("could not parse:", err)
	}
	b, err := ParseHash("0xABc123")
	if err != nil {
		t.Fatal("could not parse:", err)
	}
	if a != b {
		t.Errorf("expected %s == %s", a, b)
	}
}

func TestHash_jsonRoundtrip(t *testing.T) {
	h, err := ParseHash("abc123")
	if err != nil {
		t.Fatal("could not parse:", err)
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal("could not marshal:", err)
	}

	var decoded Hash
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal("could not unmarshal:", err)
	}

	if decoded != h {
		t.Errorf("roundtrip mismatch: %s != %s", decoded, h)
	}
}
