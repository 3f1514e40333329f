package service

import (
	"context"
	"errors"
	"log"
	"strings"

	dom "github.com/shawki99/Auth-Sys-BE/internal/domain"
	"github.com/shawki99/Auth-Sys-BE/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already exists")

// TokenIssuer signs an identity into a bearer token.
type TokenIssuer interface {
	Issue(u dom.User) (string, error)
}

// AuthService handles signup and signin.
type AuthService struct {
	repo       repo.UserRepo
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService returns a new AuthService. cost <= 0 falls back to
// bcrypt's default.
func NewAuthService(r repo.UserRepo, tokens TokenIssuer, cost int) *AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{repo: r, tokens: tokens, bcryptCost: cost}
}

// Signup creates a new account and returns its ID. The plaintext
// password is hashed and discarded; only the hash is stored.
func (s *AuthService) Signup(ctx context.Context, email, name, password string) (int64, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("signup failed: email already exists - %s", email)
		return 0, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, err
	}

	u, err := s.repo.Create(ctx, email, name, string(hash))
	if err != nil {
		// Concurrent signup with the same email can slip past the read
		// above; the unique index is the authoritative signal.
		if repo.IsUniqueViolation(err) {
			log.Printf("signup failed: email already exists - %s", email)
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	log.Printf("user signed up successfully: %s", email)
	return u.ID, nil
}

// Signin verifies credentials and returns a signed bearer token. Unknown
// email and wrong password are deliberately indistinguishable.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("signin failed: email not found - %s", email)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		log.Printf("signin failed: invalid password - %s", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", err
	}

	log.Printf("user logged in successfully: %s", email)
	return token, nil
}
