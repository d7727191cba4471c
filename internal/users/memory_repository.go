package users

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by id hex
}

// NewMemoryRepository builds an in-memory user store. It enforces the same
// mobile/email uniqueness the Mongo indexes do, so tests and dev mode see
// the backend's conflict behavior.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Mobile == user.Mobile {
			return User{}, ErrDuplicate
		}
		if user.Email != nil && existing.Email != nil && *existing.Email == *user.Email {
			return User{}, ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID.Hex()] = user
	return user, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) FindByMobile(_ context.Context, mobile string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) FindByIdentifier(_ context.Context, identifier string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Mobile == identifier {
			return u, nil
		}
		if u.Email != nil && *u.Email == identifier {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) ExistsByEmailOrMobile(_ context.Context, email *string, mobile string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Mobile == mobile {
			return true, nil
		}
		if email != nil && u.Email != nil && *u.Email == *email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
