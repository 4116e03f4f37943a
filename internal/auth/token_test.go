package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	u := &User{ID: "u1", IsAdmin: true}

	raw, err := IssueToken(secret, time.Hour, u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := ParseToken(secret, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || !claims.Admin {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	t.Parallel()

	raw, err := IssueToken([]byte("right"), time.Hour, &User{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken([]byte("wrong"), raw); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestTokenExpiryRejected(t *testing.T) {
	t.Parallel()

	raw, err := IssueToken([]byte("s"), -time.Minute, &User{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken([]byte("s"), raw); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
