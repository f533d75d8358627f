package service

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/model"
	"Snapfeed/internal/pkg/security"
	"context"
	"errors"
	"testing"
	"time"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id string) (*model.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func (f *fakeRevoker) Revoke(_ context.Context, signature string, expiration time.Duration) error {
	if f.revoked == nil {
		f.revoked = make(map[string]time.Duration)
	}
	f.revoked[signature] = expiration
	return nil
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRevoker{})

	user, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "secret12"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "a@example.com" || !user.IsActive {
		t.Fatalf("unexpected user dto: %+v", user)
	}

	stored := repo.byEmail["a@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "secret12" || stored.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty")
	}
	if err = security.CheckPasswordHash("secret12", stored.PasswordHash); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRevoker{})

	if _, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "secret12"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "other123"})
	if !errors.Is(err, ErrUserEmailExist) {
		t.Fatalf("expected ErrUserEmailExist, got %v", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	security.Init("test-secret", 1)
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRevoker{})

	if _, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "secret12"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "a@example.com", Password: "secret12"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != repo.byEmail["a@example.com"].ID {
		t.Fatalf("token carries wrong user id %q", claims.UserID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	security.Init("test-secret", 1)
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRevoker{})

	if _, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "secret12"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("expected ErrPasswordIncorrect, got %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{Email: "nobody@example.com", Password: "secret12"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	security.Init("test-secret", 1)
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRevoker{})

	if _, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "a@example.com", Password: "secret12"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	repo.byEmail["a@example.com"].IsActive = false

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "a@example.com", Password: "secret12"})
	if !errors.Is(err, ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestLogoutRevokesSignature(t *testing.T) {
	security.Init("test-secret", 2)
	repo := newFakeUserRepo()
	revoker := &fakeRevoker{}
	svc := NewUserService(repo, revoker)

	token, err := security.GenerateToken("u-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if err = svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	signature, _ := security.ExtractSignature(token)
	ttl, ok := revoker.revoked[signature]
	if !ok {
		t.Fatalf("signature not revoked")
	}
	if ttl != 2*time.Hour {
		t.Fatalf("revocation ttl %v does not match token lifetime", ttl)
	}

	if err = svc.Logout(context.Background(), "garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}
