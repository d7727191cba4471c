package users

import (
	"context"
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestMemoryRepositoryUniqueness(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, User{Name: "A", Mobile: "111", Email: strptr("a@b.co"), PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected assigned id")
	}

	if _, err := repo.Create(ctx, User{Name: "B", Mobile: "111"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for mobile, got %v", err)
	}
	if _, err := repo.Create(ctx, User{Name: "B", Mobile: "222", Email: strptr("a@b.co")}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}

	// Records without an email never collide on the email field.
	if _, err := repo.Create(ctx, User{Name: "C", Mobile: "333"}); err != nil {
		t.Fatalf("email-less create: %v", err)
	}
	if _, err := repo.Create(ctx, User{Name: "D", Mobile: "444"}); err != nil {
		t.Fatalf("second email-less create: %v", err)
	}
}

func TestMemoryRepositoryLookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	seed, err := repo.Create(ctx, User{Name: "A", Mobile: "111", Email: strptr("a@b.co")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byMobile, err := repo.FindByIdentifier(ctx, "111")
	if err != nil || byMobile.ID != seed.ID {
		t.Fatalf("find by mobile identifier: %v %v", byMobile, err)
	}
	byEmail, err := repo.FindByIdentifier(ctx, "a@b.co")
	if err != nil || byEmail.ID != seed.ID {
		t.Fatalf("find by email identifier: %v %v", byEmail, err)
	}
	if _, err := repo.FindByIdentifier(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := repo.ExistsByEmailOrMobile(ctx, strptr("a@b.co"), "000")
	if err != nil || !exists {
		t.Fatalf("expected email match: %v %v", exists, err)
	}
	exists, err = repo.ExistsByEmailOrMobile(ctx, nil, "111")
	if err != nil || !exists {
		t.Fatalf("expected mobile match: %v %v", exists, err)
	}
	exists, err = repo.ExistsByEmailOrMobile(ctx, nil, "000")
	if err != nil || exists {
		t.Fatalf("expected no match: %v %v", exists, err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("count: %d %v", count, err)
	}
}
