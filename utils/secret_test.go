package utils

import "testing"

func TestSecretKeyLookupIsDeterministic(t *testing.T) {
	a := SecretKeyLookup("sk-abc")
	b := SecretKeyLookup("sk-abc")
	if a != b {
		t.Fatalf("lookup digest not stable: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("unexpected digest length %d", len(a))
	}
	if a == SecretKeyLookup("sk-abd") {
		t.Fatal("distinct keys collided")
	}
}

func TestHashAndVerifySecretKey(t *testing.T) {
	hash, err := HashSecretKey("sk-abc")
	if err != nil {
		t.Fatalf("HashSecretKey failed: %v", err)
	}
	if hash == "sk-abc" {
		t.Fatal("secret stored in the clear")
	}
	if !VerifySecretKey(hash, "sk-abc") {
		t.Fatal("correct key rejected")
	}
	if VerifySecretKey(hash, "sk-abd") {
		t.Fatal("wrong key accepted")
	}
}
