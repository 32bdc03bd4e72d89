package repository

import (
	"context"

	"github.com/studyhub/studyhub/internal/model"
)

// UserSlot is the durable identity slot: a single persisted record holding
// the serialized session user, or nothing at all (logged out).
//
// This is the application's entire persistence surface. Questions, resources,
// answers, and votes are deliberately not persisted — they reset on restart.
type UserSlot interface {
	// Save writes the user to the slot, replacing any previous record.
	Save(ctx context.Context, user *model.User) error
	// Load returns the persisted user, or apperror.ErrNotFound if the slot
	// is empty.
	Load(ctx context.Context) (*model.User, error)
	// Clear empties the slot. Clearing an already-empty slot is not an error.
	Clear(ctx context.Context) error
}
