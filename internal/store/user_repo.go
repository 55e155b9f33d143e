package store

import (
	"context"
	"fmt"
	"time"

	"wheeltrack/ent"
	"wheeltrack/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, userID string) (*UserRecord, error) {
	existing, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u, err := r.client.User.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		// A concurrent Create can win the race; fall back to the winner.
		if ent.IsConstraintError(err) {
			return r.Get(ctx, userID)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) Get(ctx context.Context, userID string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) SetPhase(ctx context.Context, userID, phase string) error {
	n, err := r.client.User.Update().
		Where(user.UserIDEQ(userID)).
		SetCurrentPhase(phase).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set phase: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set phase: user %s not found", userID)
	}
	return nil
}

func (r *userRepo) Touch(ctx context.Context, userID string) error {
	_, err := r.client.User.Update().
		Where(user.UserIDEQ(userID)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

func entUserToRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		UserID:       u.UserID,
		CurrentPhase: u.CurrentPhase,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
