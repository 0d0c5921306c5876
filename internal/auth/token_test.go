package auth

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if !strings.HasPrefix(token, TokenPrefix) {
		t.Errorf("Token missing prefix: %s", token)
	}
	if len(token) != len(TokenPrefix)+TokenLength*2 {
		t.Errorf("Unexpected token length %d", len(token))
	}

	other, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == other {
		t.Error("Two generated tokens are identical")
	}
}

func TestHashAndVerifyToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatal(err)
	}

	hash, err := HashToken(token)
	if err != nil {
		t.Fatalf("HashToken failed: %v", err)
	}
	if hash == token || strings.Contains(hash, strings.TrimPrefix(token, TokenPrefix)) {
		t.Error("Hash leaks the token")
	}

	if !VerifyToken(token, hash) {
		t.Error("Valid token rejected")
	}
	if VerifyToken(TokenPrefix+"0000", hash) {
		t.Error("Wrong token accepted")
	}
	if VerifyToken(token, "") {
		t.Error("Empty hash accepted")
	}
}
