package users

import (
	"context"
	"errors"
)

// Repository-level sentinels. Implementations translate their backend's
// not-found and duplicate-key failures into these.
var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

// Repository persists user records. The store assigns the record identifier
// at insert time; Create returns the stored user with that identifier set.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByMobile(ctx context.Context, mobile string) (User, error)
	// FindByIdentifier matches identifier against either the email or the
	// mobile field.
	FindByIdentifier(ctx context.Context, identifier string) (User, error)
	// ExistsByEmailOrMobile reports whether any record already uses the
	// mobile number, or the email when one is supplied.
	ExistsByEmailOrMobile(ctx context.Context, email *string, mobile string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
