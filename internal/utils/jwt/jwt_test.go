package jwt

import (
	"testing"
	"time"
)

const testSecret = "test_secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("42", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	userID, err := ExtractUserIDFromToken(token, testSecret)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if userID != "42" {
		t.Fatalf("Expected user ID 42, got %s", userID)
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	refresh, err := CreateRefreshToken("42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := ExtractUserIDFromToken(refresh, testSecret); err == nil {
		t.Fatal("Expected refresh token to be rejected as an access token")
	}

	userID, err := ExtractUserIDFromRefreshToken(refresh, testSecret)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if userID != "42" {
		t.Fatalf("Expected user ID 42, got %s", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateAccessToken("42", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := ExtractUserIDFromToken(token, testSecret); err == nil {
		t.Fatal("Expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := CreateAccessToken("42", testSecret, time.Minute)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := ExtractUserIDFromToken(token, "other_secret"); err == nil {
		t.Fatal("Expected token signed with a different secret to be rejected")
	}
}
