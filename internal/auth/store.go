package auth

import (
	"context"

	"zambus/internal/domain/models"
	"zambus/internal/storage"
)

// Store holds the single optional signed-in user of one session.
type Store struct {
	s storage.Storage
}

// NewStore scopes the auth record of sessionID inside base.
func NewStore(base storage.Storage, sessionID string) Store {
	return Store{s: storage.WithPrefix(base, "session:"+sessionID)}
}

func (a Store) Login(ctx context.Context, u models.PublicUser) error {
	return storage.SetJSON(ctx, a.s, storage.KeyAuth, u)
}

func (a Store) Logout(ctx context.Context) error {
	return a.s.RemoveItem(ctx, storage.KeyAuth)
}

// Current returns the signed-in user, if any.
func (a Store) Current(ctx context.Context) (models.PublicUser, bool, error) {
	var u models.PublicUser
	found, err := storage.GetJSON(ctx, a.s, storage.KeyAuth, &u)
	if err != nil || !found {
		return models.PublicUser{}, false, err
	}
	return u, true, nil
}
