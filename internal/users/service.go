package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Messages surfaced to callers. The conflict message deliberately does not
// say which field collided. The strict login path names the identifier kind
// in its no-match message; that asymmetry matches the historical contract
// and is kept as-is.
const (
	msgDuplicateAccount   = "user with this mobile/email already exists"
	msgInvalidCredentials = "invalid credentials"
	msgIncorrectPassword  = "incorrect password"
	msgNoAccountEmail     = "no account found with this email"
	msgNoAccountMobile    = "no account found with this mobile"
)

// Service implements account registration and credential verification over
// a user repository. Stateless per request; safe for concurrent use.
type Service struct {
	repo Repository
	cost int
}

// NewService creates the auth service. A non-positive cost falls back to
// the bcrypt default.
func NewService(repo Repository, cost int) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: cost}
}

// SignUp validates the payload, rejects duplicate accounts, hashes the
// password and persists the record. Returns the sanitized profile.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (Profile, error) {
	if verr := validateSignUp(in); verr != nil {
		return Profile{}, verr
	}

	mobile := strings.TrimSpace(in.Mobile)
	var email *string
	if in.Email != "" {
		e := normalizeEmail(in.Email)
		email = &e
	}

	exists, err := s.repo.ExistsByEmailOrMobile(ctx, email, mobile)
	if err != nil {
		return Profile{}, Internal(err)
	}
	if exists {
		return Profile{}, Conflicted(msgDuplicateAccount)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return Profile{}, Invalid("password is too long")
		}
		return Profile{}, Internal(err)
	}

	user := User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Mobile:       mobile,
		Country:      strings.TrimSpace(in.Country),
		State:        strings.TrimSpace(in.State),
		City:         strings.TrimSpace(in.City),
		Village:      strings.TrimSpace(in.Village),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique indexes make the insert the authoritative duplicate
		// check; two racing signups resolve here.
		if errors.Is(err, ErrDuplicate) {
			return Profile{}, Conflicted(msgDuplicateAccount)
		}
		return Profile{}, Internal(err)
	}

	return created.Profile(), nil
}

// Login resolves the identifier to an account and verifies the password
// against the stored hash. An empty LoginType matches the identifier
// against both fields; a declared type validates the identifier's syntax
// and queries only that field.
func (s *Service) Login(ctx context.Context, in LoginInput) (Profile, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" {
		return Profile{}, Invalid("identifier is required")
	}

	var (
		user      User
		err       error
		noAccount *Error
	)
	switch in.LoginType {
	case "":
		// Emails are stored lowercased, so an email-shaped identifier is
		// normalized the same way before the OR lookup.
		if strings.Contains(identifier, "@") {
			identifier = normalizeEmail(identifier)
		}
		user, err = s.repo.FindByIdentifier(ctx, identifier)
		noAccount = Unauthorized(msgInvalidCredentials)
	case LoginTypeEmail:
		identifier = normalizeEmail(identifier)
		if !validEmail(identifier) {
			return Profile{}, Invalid("invalid email format")
		}
		user, err = s.repo.FindByEmail(ctx, identifier)
		noAccount = Unauthorized(msgNoAccountEmail)
	case LoginTypeMobile:
		if !validMobile(identifier) {
			return Profile{}, Invalid("invalid mobile number")
		}
		user, err = s.repo.FindByMobile(ctx, identifier)
		noAccount = Unauthorized(msgNoAccountMobile)
	default:
		return Profile{}, Invalid("unknown login type")
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, noAccount
		}
		return Profile{}, Internal(err)
	}

	// A record without a hash can never verify.
	if user.PasswordHash == "" {
		return Profile{}, Unauthorized(msgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if in.LoginType == "" {
			return Profile{}, Unauthorized(msgInvalidCredentials)
		}
		return Profile{}, Unauthorized(msgIncorrectPassword)
	}

	return user.Profile(), nil
}
