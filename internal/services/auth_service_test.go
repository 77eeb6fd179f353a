package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	apperrors "neighbortask.com/neighbortask/internal/errors"
	"neighbortask.com/neighbortask/internal/session"
)

func newTestAuthService(store session.SnapshotStore) *AuthService {
	return NewAuthService(store, []byte("test-secret"), 0)
}

func TestAuthService_ResumeWithoutSnapshot(t *testing.T) {
	svc := newTestAuthService(&memorySnapshotStore{})

	if _, state := svc.CurrentUser(); state != StateLoading {
		t.Errorf("expected state %s before resume, got %s", StateLoading, state)
	}

	if err := svc.Resume(context.Background()); err != nil {
		t.Fatalf("resume failed: %v", err)
	}

	user, state := svc.CurrentUser()
	if state != StateAnonymous {
		t.Errorf("expected state %s, got %s", StateAnonymous, state)
	}
	if user != nil {
		t.Errorf("expected no user, got %q", user.Name)
	}
}

func TestAuthService_ResumeWithSnapshot(t *testing.T) {
	store := &memorySnapshotStore{}
	ctx := context.Background()

	first := newTestAuthService(store)
	if _, _, err := first.Login(ctx, "demo@example.com", "password"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	second := newTestAuthService(store)
	if err := second.Resume(ctx); err != nil {
		t.Fatalf("resume failed: %v", err)
	}

	user, state := second.CurrentUser()
	if state != StateAuthenticated {
		t.Errorf("expected state %s, got %s", StateAuthenticated, state)
	}
	if user == nil || user.Name != "Demo User" {
		t.Errorf("expected resumed demo user, got %+v", user)
	}
}

func TestAuthService_LoginDemoCredentials(t *testing.T) {
	store := &memorySnapshotStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "demo@example.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if user.Name != "Demo User" {
		t.Errorf("expected Demo User, got %q", user.Name)
	}
	if user.Rating != 4.8 {
		t.Errorf("expected rating 4.8, got %v", user.Rating)
	}
	if token == "" {
		t.Error("expected a token")
	}

	subject, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}
	if subject != user.ID {
		t.Errorf("expected subject %q, got %q", user.ID, subject)
	}

	if _, state := svc.CurrentUser(); state != StateAuthenticated {
		t.Errorf("expected state %s, got %s", StateAuthenticated, state)
	}

	saved, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("expected persisted snapshot: %v", err)
	}
	if saved.Email != "demo@example.com" {
		t.Errorf("snapshot holds wrong user: %q", saved.Email)
	}
}

func TestAuthService_LoginWrongCredentials(t *testing.T) {
	store := &memorySnapshotStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	if err := svc.Resume(ctx); err != nil {
		t.Fatalf("resume failed: %v", err)
	}

	cases := []struct{ email, password string }{
		{"demo@example.com", "wrong"},
		{"other@example.com", "password"},
		{"", ""},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(ctx, tc.email, tc.password)
		if err != apperrors.ErrInvalidCredentials {
			t.Errorf("login(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}

	if _, state := svc.CurrentUser(); state != StateAnonymous {
		t.Errorf("expected state %s after failed logins, got %s", StateAnonymous, state)
	}
	if _, err := store.Load(ctx); err != session.ErrNoSnapshot {
		t.Errorf("expected no snapshot, got %v", err)
	}
}

func TestAuthService_SignupAlwaysSucceeds(t *testing.T) {
	svc := newTestAuthService(&memorySnapshotStore{})
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "new@example.com", "anything", "New User", "Springfield Village")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated user id")
	}
	if user.Rating != 5.0 {
		t.Errorf("expected rating 5.0, got %v", user.Rating)
	}
	if user.CompletedTasks != 0 {
		t.Errorf("expected 0 completed tasks, got %d", user.CompletedTasks)
	}
	if user.JoinedDate == "" {
		t.Error("expected a join date")
	}
	if token == "" {
		t.Error("expected a token")
	}

	if _, state := svc.CurrentUser(); state != StateAuthenticated {
		t.Errorf("expected state %s, got %s", StateAuthenticated, state)
	}
}

func TestAuthService_LogoutAfterLogin(t *testing.T) {
	store := &memorySnapshotStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "demo@example.com", "password"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	user, state := svc.CurrentUser()
	if state != StateAnonymous {
		t.Errorf("expected state %s, got %s", StateAnonymous, state)
	}
	if user != nil {
		t.Errorf("expected no user after logout, got %q", user.Name)
	}
	if _, err := store.Load(ctx); err != session.ErrNoSnapshot {
		t.Errorf("expected snapshot removed, got %v", err)
	}
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(&memorySnapshotStore{})

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}

	other := NewAuthService(&memorySnapshotStore{}, []byte("other-secret"), 0)
	_, token, err := other.Signup(context.Background(), "a@b.c", "pw", "A", "B")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestAuthService_ValidateTokenRejectsUnsignedAlg(t *testing.T) {
	svc := newTestAuthService(&memorySnapshotStore{})

	claims := jwt.RegisteredClaims{Subject: "1"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("building none-alg token failed: %v", err)
	}

	if _, err := svc.ValidateToken(unsigned); err != apperrors.ErrUnauthenticated {
		t.Errorf("expected none-alg token to be rejected, got %v", err)
	}
}
