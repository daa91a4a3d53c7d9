// Package auth registers accounts, checks credentials and issues and
// verifies the bearer tokens that scope every ledger request to one account.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenLifetime is the validity of an access token from issuance.
const TokenLifetime = 60 * time.Minute

// MinPasswordLength is the minimal number of bytes a password must have.
const MinPasswordLength = 8

// TokenType is the token_type returned with every access token.
const TokenType = "bearer"

var (
	ErrDuplicateAccount   = errors.New("an account with this email address already exists")
	ErrInvalidCredentials = errors.New("the email address or password is incorrect")
	ErrUnauthorized       = errors.New("the access token is missing, invalid or expired")
	ErrAccountNotFound    = errors.New("there is no account matching your query")
	ErrEmailRequired      = errors.New("the email address must be set")
	ErrPasswordTooShort   = fmt.Errorf("the password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong    = errors.New("the password must not be longer than 72 bytes")
	ErrSecretRequired     = errors.New("a secret for signing access tokens must be set")
)

// Account is a registered user.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
}

// Store persists accounts.
//
// CreateAccount must return ErrDuplicateAccount if the email address is
// already in use, the lookups return ErrAccountNotFound for unknown accounts.
type Store interface {
	CreateAccount(ctx context.Context, account Account) (Account, error)
	AccountByEmail(ctx context.Context, email string) (Account, error)
	AccountByID(ctx context.Context, id uuid.UUID) (Account, error)
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Service is the credential service.
type Service struct {
	store    Store
	secret   []byte
	cost     int
	lifetime time.Duration
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

type Option func(*Service)

// WithCost sets the bcrypt cost factor. Defaults to bcrypt.DefaultCost.
func WithCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

// WithClock replaces time.Now for token issuance and verification.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New returns a Service storing accounts in store and signing tokens with secret.
func New(store Store, secret []byte, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		return nil, ErrSecretRequired
	}

	s := &Service{
		store:    store,
		secret:   secret,
		cost:     bcrypt.DefaultCost,
		lifetime: TokenLifetime,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NormalizeEmail trims whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Only the bcrypt hash of the password is stored.
func (s *Service) Register(ctx context.Context, email, password string) (Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return Account{}, ErrEmailRequired
	}

	if len(password) < MinPasswordLength {
		return Account{}, ErrPasswordTooShort
	}

	// Optimistic check. Concurrent registrations are caught by the
	// unique constraint of the store.
	_, err := s.store.AccountByEmail(ctx, email)
	if err == nil {
		return Account{}, ErrDuplicateAccount
	} else if !errors.Is(err, ErrAccountNotFound) {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return Account{}, ErrPasswordTooLong
	} else if err != nil {
		return Account{}, fmt.Errorf("hashing password: %w", err)
	}

	return s.store.CreateAccount(ctx, Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate checks the credentials and issues an access token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Token, error) {
	account, err := s.store.AccountByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, ErrAccountNotFound) {
		// Compare anyway so that unknown addresses take as long as wrong passwords
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return Token{}, ErrInvalidCredentials
	} else if err != nil {
		return Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return Token{}, ErrInvalidCredentials
	}

	return s.issue(account.ID)
}

// Verify checks signature and expiry of the token and returns the ID
// of the account it was issued for.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", ErrUnauthorized)
	}

	return id, nil
}

// Account returns the account for the ID.
func (s *Service) Account(ctx context.Context, id uuid.UUID) (Account, error) {
	return s.store.AccountByID(ctx, id)
}

func (s *Service) issue(id uuid.UUID) (Token, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.lifetime)

	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Token{}, fmt.Errorf("signing token: %w", err)
	}

	return Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt.UTC().Truncate(time.Second),
	}, nil
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	})

	return s.dummyHash
}
