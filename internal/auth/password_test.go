package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// ハッシュと平文の照合が成功することを検証
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("expected password to verify against its own hash")
	}
}

// 同一平文でもハッシュは毎回異なり、どちらも照合に成功することを検証
// （bcryptのソルトによる非決定性）
func TestHashPassword_NonDeterministic(t *testing.T) {
	h1, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}

	for _, h := range []string{h1, h2} {
		ok, err := VerifyPassword("same-input", h)
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if !ok {
			t.Error("expected both hashes to verify the original password")
		}
	}
}

// 異なる平文は照合に失敗し、エラーにはならないことを検証
func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("password-a", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	ok, err := VerifyPassword("password-b", hash)
	if err != nil {
		t.Fatalf("expected no error for a mismatch, got %v", err)
	}
	if ok {
		t.Error("expected mismatched password to fail verification")
	}
}

// 破損したハッシュは不一致ではなくローカルエラーになることを検証
func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("anything", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected an error for a malformed stored hash")
	}
	if ok {
		t.Error("expected verification to fail for a malformed hash")
	}
}
