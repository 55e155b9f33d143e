package store

import (
	"context"
	"fmt"
	"time"

	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/stepevent"
	"wheeltrack/ent/telemetryevent"
	"wheeltrack/ent/user"
)

// PurgeUser deletes every observation, attempt session and progress trace
// belonging to a user inside one transaction. A concurrent reader sees either
// all of the user's data or none of it. The user record itself survives with
// a reset phase, so the identity remains registered.
func (s *Store) PurgeUser(ctx context.Context, userID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin purge tx: %w", err)
	}
	rollback := func(err error) error {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}

	if _, err := tx.TelemetryEvent.Delete().
		Where(telemetryevent.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("purge telemetry events: %w", err))
	}

	if _, err := tx.ErrorEvent.Delete().
		Where(errorevent.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("purge error events: %w", err))
	}

	if _, err := tx.StepEvent.Delete().
		Where(stepevent.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("purge step events: %w", err))
	}

	if _, err := tx.AttemptSession.Delete().
		Where(attemptsession.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("purge attempt sessions: %w", err))
	}

	if _, err := tx.User.Update().
		Where(user.UserIDEQ(userID)).
		SetCurrentPhase("Foundation").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return rollback(fmt.Errorf("reset user record: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit purge: %w", err)
	}
	return nil
}
