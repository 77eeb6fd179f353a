package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "neighbortask.com/neighbortask/internal/errors"
	model "neighbortask.com/neighbortask/internal/models"
	"neighbortask.com/neighbortask/internal/session"
)

// SessionState is the explicit session lifecycle tag. A service starts in
// StateLoading and settles to authenticated or anonymous once Resume has read
// the persisted snapshot.
type SessionState string

const (
	StateLoading       SessionState = "loading"
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password"
)

// The demo credential is checked through bcrypt like a real one would be.
var demoPasswordHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("hash demo password: %v", err))
	}
	return hash
}()

type AuthService struct {
	mu        sync.Mutex
	snapshots session.SnapshotStore
	secret    []byte
	delay     time.Duration

	state SessionState
	user  *model.User
}

// NewAuthService returns a service in StateLoading. delay is the simulated
// round-trip imposed on login and signup; it always completes and has no
// cancellation semantics.
func NewAuthService(snapshots session.SnapshotStore, secret []byte, delay time.Duration) *AuthService {
	return &AuthService{
		snapshots: snapshots,
		secret:    secret,
		delay:     delay,
		state:     StateLoading,
	}
}

// Resume reads the persisted snapshot and settles the session state. Called
// once at startup.
func (s *AuthService) Resume(ctx context.Context) error {
	user, err := s.snapshots.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateAnonymous
		s.user = nil
		if err == session.ErrNoSnapshot {
			return nil
		}
		return err
	}

	s.state = StateAuthenticated
	s.user = user
	return nil
}

// Login checks the single demo credential pair. On success the demo profile
// becomes the live session, its snapshot is persisted whole, and a bearer
// token is issued. Failure carries no wrong-email/wrong-password detail.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	s.simulateRoundTrip()

	if email != demoEmail {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(demoPasswordHash, []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user := demoProfile()
	if err := s.establish(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Signup always succeeds. The new user gets a time-derived id, rating 5.0,
// zero completed tasks, and today's join date.
func (s *AuthService) Signup(ctx context.Context, email, password, name, location string) (*model.User, string, error) {
	s.simulateRoundTrip()

	now := time.Now()
	user := &model.User{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Email:          email,
		Name:           name,
		Location:       location,
		Rating:         5.0,
		CompletedTasks: 0,
		JoinedDate:     now.Format("2006-01-02"),
	}

	if err := s.establish(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout clears the live user and deletes the snapshot. Outstanding tokens are
// dead afterwards because the middleware requires a live session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.snapshots.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()

	return nil
}

// CurrentUser returns the live session user and state. The user is nil unless
// the state is StateAuthenticated.
func (s *AuthService) CurrentUser() (*model.User, SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.state
}

func (s *AuthService) establish(ctx context.Context, user *model.User) error {
	if err := s.snapshots.Save(ctx, user); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()

	log.Printf("session established for %s", user.Email)
	return nil
}

func (s *AuthService) simulateRoundTrip() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// ValidateToken parses a bearer token and returns its subject (the user id).
func (s *AuthService) ValidateToken(token string) (string, error) {
	tok, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", apperrors.ErrUnauthenticated
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", apperrors.ErrUnauthenticated
	}
	return claims.Subject, nil
}

func demoProfile() *model.User {
	return &model.User{
		ID:             "1",
		Email:          demoEmail,
		Name:           "Demo User",
		Location:       "Springfield Village",
		Rating:         4.8,
		CompletedTasks: 15,
		JoinedDate:     "2024-01-15",
	}
}
