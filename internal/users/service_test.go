package users

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(repo Repository) *Service {
	return NewService(repo, bcrypt.MinCost)
}

func signUpFixture() SignUpInput {
	return SignUpInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Country:  "IN",
		State:    "MH",
		City:     "Pune",
		Village:  "Wagholi",
		Password: "secret123",
	}
}

func TestSignUpAndLoginRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	profile, err := svc.SignUp(ctx, signUpFixture())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if profile.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if profile.Email == nil || *profile.Email != "asha@example.com" {
		t.Fatalf("unexpected email in profile: %v", profile.Email)
	}

	for _, identifier := range []string{"9876543210", "asha@example.com"} {
		got, err := svc.Login(ctx, LoginInput{Identifier: identifier, Password: "secret123"})
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if got.ID != profile.ID || got.Mobile != profile.Mobile {
			t.Fatalf("login profile mismatch: got %+v want %+v", got, profile)
		}
	}

	if _, err := svc.Login(ctx, LoginInput{Identifier: "9876543210", Password: "wrong"}); KindOf(err) != KindUnauthorized {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
}

func TestSignUpDuplicateLeavesStoreUnchanged(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, signUpFixture()); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	cases := map[string]SignUpInput{
		"same mobile": func() SignUpInput {
			in := signUpFixture()
			in.Email = "other@example.com"
			return in
		}(),
		"same email": func() SignUpInput {
			in := signUpFixture()
			in.Mobile = "9000000000"
			return in
		}(),
	}
	for name, in := range cases {
		_, err := svc.SignUp(ctx, in)
		if KindOf(err) != KindConflict {
			t.Fatalf("%s: expected conflict, got %v", name, err)
		}
		if err.Error() != msgDuplicateAccount {
			t.Fatalf("%s: conflict message must not name the field: %q", name, err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record after conflicts, got %d", count)
	}
}

// failingRepository proves validation happens before any store access.
type failingRepository struct{}

func (failingRepository) Create(context.Context, User) (User, error) {
	return User{}, errors.New("store touched")
}
func (failingRepository) FindByEmail(context.Context, string) (User, error) {
	return User{}, errors.New("store touched")
}
func (failingRepository) FindByMobile(context.Context, string) (User, error) {
	return User{}, errors.New("store touched")
}
func (failingRepository) FindByIdentifier(context.Context, string) (User, error) {
	return User{}, errors.New("store touched")
}
func (failingRepository) ExistsByEmailOrMobile(context.Context, *string, string) (bool, error) {
	return false, errors.New("store touched")
}
func (failingRepository) Count(context.Context) (int64, error) {
	return 0, errors.New("store touched")
}

func TestSignUpInvalidEmailRejectedBeforeStore(t *testing.T) {
	svc := newTestService(failingRepository{})

	in := signUpFixture()
	in.Email = "not-an-email"
	_, err := svc.SignUp(context.Background(), in)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginUnknownIdentifier(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	_, err := svc.Login(context.Background(), LoginInput{Identifier: "nobody@example.com", Password: "x"})
	if KindOf(err) != KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err.Error() != msgInvalidCredentials {
		t.Fatalf("loose login must not reveal which field failed: %q", err)
	}
}

func TestLoginStrictVariant(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, signUpFixture()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Identifier: "asha@example.com", Password: "secret123", LoginType: LoginTypeEmail}); err != nil {
		t.Fatalf("strict email login: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Identifier: "9876543210", Password: "secret123", LoginType: LoginTypeMobile}); err != nil {
		t.Fatalf("strict mobile login: %v", err)
	}

	// Syntax is checked against the declared kind before the lookup.
	_, err := svc.Login(ctx, LoginInput{Identifier: "9876543210", Password: "secret123", LoginType: LoginTypeEmail})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for mobile-shaped email identifier, got %v", err)
	}

	_, err = svc.Login(ctx, LoginInput{Identifier: "8000000000", Password: "secret123", LoginType: LoginTypeMobile})
	if KindOf(err) != KindUnauthorized || err.Error() != msgNoAccountMobile {
		t.Fatalf("expected per-kind no-account message, got %v", err)
	}

	_, err = svc.Login(ctx, LoginInput{Identifier: "x", Password: "y", LoginType: "carrier-pigeon"})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for unknown login type, got %v", err)
	}
}

func TestLoginToleratesEmptyStoredHash(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := repo.Create(ctx, User{Name: "Legacy", Mobile: "7000000000"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Identifier: "7000000000", Password: "anything"})
	if KindOf(err) != KindUnauthorized {
		t.Fatalf("expected unauthorized for empty stored hash, got %v", err)
	}
}

func TestProfileNeverCarriesHash(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	profile, err := svc.SignUp(context.Background(), signUpFixture())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("profile JSON leaks a password field: %s", raw)
	}
}
