package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	tokenStr, err := GenerateJWT("estimator@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("Expected map claims")
	}
	if claims["email"] != "estimator@example.com" {
		t.Errorf("Expected email claim, got %v", claims["email"])
	}
	if claims["type"] != "access" {
		t.Errorf("Expected access token type, got %v", claims["type"])
	}
}

func TestGenerateRefreshToken_CarriesRefreshType(t *testing.T) {
	tokenStr, err := GenerateRefreshToken("estimator@example.com")
	if err != nil {
		t.Fatalf("Failed to generate refresh token: %v", err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatalf("Failed to validate refresh token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["type"] != "refresh" {
		t.Errorf("Expected refresh token type, got %v", claims["type"])
	}
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("Expected garbage token to be rejected")
	}
}

func TestValidateJWT_RejectsTamperedToken(t *testing.T) {
	tokenStr, err := GenerateJWT("estimator@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("Expected tampered token to be rejected")
	}
}

func TestPasswordHashing_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !ValidatePassword(hash, "s3cret") {
		t.Error("Expected the original password to validate")
	}
	if ValidatePassword(hash, "wrong") {
		t.Error("Expected a wrong password to fail")
	}
}
