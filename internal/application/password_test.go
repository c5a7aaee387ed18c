package application

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := CreatePasswordHash("correct horse", DefaultArgon2idParams)
	if err != nil {
		t.Fatalf("CreatePasswordHash returned %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash prefix: %q", hash)
	}

	if err := VerifyPassword(hash, "correct horse"); err != nil {
		t.Fatalf("VerifyPassword rejected the right password: %v", err)
	}
	if err := VerifyPassword(hash, "battery staple"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("VerifyPassword returned %v for wrong password, want ErrInvalidCredentials", err)
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "wrong segment count", hash: "$argon2id$v=19$m=65536,t=3,p=2$salt"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := VerifyPassword(tc.hash, "any"); !errors.Is(err, ErrInvalidPasswordHash) {
				t.Fatalf("VerifyPassword returned %v, want ErrInvalidPasswordHash", err)
			}
		})
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	t.Parallel()

	first, err := CreatePasswordHash("same password", DefaultArgon2idParams)
	if err != nil {
		t.Fatalf("CreatePasswordHash returned %v", err)
	}
	second, err := CreatePasswordHash("same password", DefaultArgon2idParams)
	if err != nil {
		t.Fatalf("CreatePasswordHash returned %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
}
