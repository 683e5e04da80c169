package services

import (
    "errors"
    "testing"
    "time"

    "github.com/rs/zerolog"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
)

func testUserStore() *UserStore {
    cfg := config.Config{SecretKey: "test-secret", TokenExpiry: time.Hour}
    return NewUserStore(cfg, zerolog.Nop())
}

func TestAuthenticate(t *testing.T) {
    store := testUserStore()

    u, err := store.Authenticate("admin@example.com", "adminpassword")
    if err != nil { t.Fatalf("authenticate: %v", err) }
    if u.Role != domain.RoleAdmin { t.Fatalf("role = %s", u.Role) }

    if _, err := store.Authenticate("admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
        t.Fatalf("expected ErrInvalidCredentials, got %v", err)
    }
    if _, err := store.Authenticate("nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
        t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
    }
}

func TestTokenRoundTrip(t *testing.T) {
    store := testUserStore()

    tok, err := store.IssueToken(2)
    if err != nil { t.Fatalf("issue: %v", err) }
    if tok.TokenType != "bearer" { t.Fatalf("token_type = %s", tok.TokenType) }
    if !tok.ExpiresAt.After(time.Now()) { t.Fatalf("expiry in the past: %v", tok.ExpiresAt) }

    u, err := store.VerifyToken(tok.AccessToken)
    if err != nil { t.Fatalf("verify: %v", err) }
    if u.ID != 2 || u.Role != domain.RoleEditor { t.Fatalf("resolved wrong user: %#v", u) }
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
    store := testUserStore()
    if _, err := store.VerifyToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
        t.Fatalf("expected ErrInvalidToken, got %v", err)
    }
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
    other := NewUserStore(config.Config{SecretKey: "other-secret", TokenExpiry: time.Hour}, zerolog.Nop())
    tok, err := other.IssueToken(1)
    if err != nil { t.Fatalf("issue: %v", err) }

    store := testUserStore()
    if _, err := store.VerifyToken(tok.AccessToken); !errors.Is(err, ErrInvalidToken) {
        t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
    }
}
