/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "errors"
    "fmt"
    "sync"
    "time"

    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/config"
    "github.com/SecTionXx/SaleOrderForecast-sub004/internal/domain"
    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "github.com/rs/zerolog"
    "golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrInvalidToken = errors.New("invalid or expired token")

type storedUser struct {
    user domain.User
    hash []byte
}

// UserStore keeps the seeded user set in memory. There is no database anywhere
// in this system; the store exists to back login and bearer verification.
type UserStore struct {
    cfg   config.Config
    log   zerolog.Logger
    mu    sync.RWMutex
    users map[int]storedUser
}

func NewUserStore(cfg config.Config, log zerolog.Logger) *UserStore {
    s := &UserStore{cfg: cfg, log: log, users: map[int]storedUser{}}
    s.seed(1, "admin@example.com", "Admin User", domain.RoleAdmin, "adminpassword")
    s.seed(2, "editor@example.com", "Editor User", domain.RoleEditor, "editorpassword")
    s.seed(3, "viewer@example.com", "Viewer User", domain.RoleViewer, "viewerpassword")
    return s
}

func (s *UserStore) seed(id int, email, name string, role domain.UserRole, password string) {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        s.log.Error().Err(err).Str("email", email).Msg("seed user hash failed")
        return
    }
    s.users[id] = storedUser{
        user: domain.User{
            ID:        id,
            Email:     email,
            FullName:  name,
            Role:      role,
            IsActive:  true,
            CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
        },
        hash: hash,
    }
}

// Authenticate checks the password against the stored hash and returns the
// user. Inactive users cannot log in.
func (s *UserStore) Authenticate(email, password string) (*domain.User, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    for _, su := range s.users {
        if su.user.Email != email { continue }
        if bcrypt.CompareHashAndPassword(su.hash, []byte(password)) != nil { return nil, ErrInvalidCredentials }
        if !su.user.IsActive { return nil, ErrInvalidCredentials }
        u := su.user
        return &u, nil
    }
    return nil, ErrInvalidCredentials
}

// IssueToken mints a signed JWT for the user with the configured expiry.
func (s *UserStore) IssueToken(userID int) (domain.Token, error) {
    now := time.Now().UTC()
    expire := now.Add(s.cfg.TokenExpiry)
    claims := jwt.MapClaims{
        "sub": fmt.Sprint(userID),
        "exp": expire.Unix(),
        "iat": now.Unix(),
        "jti": uuid.NewString(),
    }
    tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := tok.SignedString([]byte(s.cfg.SecretKey))
    if err != nil { return domain.Token{}, err }
    return domain.Token{AccessToken: signed, TokenType: "bearer", ExpiresAt: expire}, nil
}

// VerifyToken validates a bearer token and resolves its user.
func (s *UserStore) VerifyToken(tokenString string) (*domain.User, error) {
    tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
        }
        return []byte(s.cfg.SecretKey), nil
    })
    if err != nil || !tok.Valid { return nil, ErrInvalidToken }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok { return nil, ErrInvalidToken }
    sub, _ := claims["sub"].(string)
    var id int
    if _, err := fmt.Sscanf(sub, "%d", &id); err != nil { return nil, ErrInvalidToken }

    s.mu.RLock()
    defer s.mu.RUnlock()
    su, ok := s.users[id]
    if !ok || !su.user.IsActive { return nil, ErrInvalidToken }
    u := su.user
    return &u, nil
}
