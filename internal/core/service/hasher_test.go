package service

import (
	"errors"
	"testing"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

func TestPasswordHasher_VerifyMatch(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("expected digest, got plaintext")
	}

	ok, err := h.Verify("s3cret-pass", digest)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestPasswordHasher_VerifyMismatch(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("wrong-password", digest)
	if err != nil {
		t.Fatalf("mismatch should not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestPasswordHasher_MutatedDigest(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if len(digest) != 60 {
		t.Fatalf("unexpected digest length: %d", len(digest))
	}

	// Layout: $2a$10$ + 22 salt chars + 31 checksum chars. Mutating any
	// checksum byte must defeat verification. The final char is skipped: its
	// low bits are padding, so two encodings can decode identically.
	start := len(digest) - 31
	for i := start; i < len(digest)-1; i++ {
		mutated := []byte(digest)
		if mutated[i] == 'x' {
			mutated[i] = 'y'
		} else {
			mutated[i] = 'x'
		}
		ok, _ := h.Verify("correct-password", string(mutated))
		if ok {
			t.Fatalf("digest with byte %d mutated still verifies", i)
		}
	}
}

func TestPasswordHasher_MutatedPrefix(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	bad := "$9" + digest[2:]
	if _, err := h.Verify("correct-password", bad); !errors.Is(err, domain.ErrHashFormat) {
		t.Fatalf("expected ErrHashFormat for mutated prefix, got %v", err)
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher()

	if _, err := h.Verify("anything", "not-a-bcrypt-digest"); !errors.Is(err, domain.ErrHashFormat) {
		t.Fatalf("expected ErrHashFormat, got %v", err)
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ")
	}
}
