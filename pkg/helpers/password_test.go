package helpers

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secretpw")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "secretpw" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CompareHashAndPassword(hash, "secretpw") {
		t.Error("correct password should verify")
	}
	if CompareHashAndPassword(hash, "wrongpw") {
		t.Error("wrong password must not verify")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("samepw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("samepw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (per-hash salt)")
	}
}
