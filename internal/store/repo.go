package store

import (
	"context"
	"time"
)

// Status is the lifecycle state of an attempt session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// UserRecord is a registered trainee.
type UserRecord struct {
	UserID       string
	CurrentPhase string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Attempt is one timed trial of a user performing a skill.
type Attempt struct {
	AttemptID string
	UserID    string
	SkillID   string
	Status    Status
	Success   *bool
	StartTime time.Time
	EndTime   *time.Time
}

// Completed reports whether the attempt reached its terminal state.
func (a *Attempt) Completed() bool { return a.Status == StatusCompleted }

// Failed reports whether the attempt completed unsuccessfully.
func (a *Attempt) Failed() bool {
	return a.Status == StatusCompleted && a.Success != nil && !*a.Success
}

// Succeeded reports whether the attempt completed successfully.
func (a *Attempt) Succeeded() bool {
	return a.Status == StatusCompleted && a.Success != nil && *a.Success
}

// StepRecord is a single input observation within an attempt.
type StepRecord struct {
	AttemptID     string
	UserID        string
	SkillID       string
	StepNumber    int
	ExpectedInput string
	ActualInput   string
	Correct       bool
	Timestamp     time.Time
}

// ErrorRecord is a single error observation within an attempt.
type ErrorRecord struct {
	AttemptID      string
	UserID         string
	SkillID        string
	StepNumber     int
	ErrorType      string
	ExpectedAction string
	ActualAction   string
	Timestamp      time.Time
}

// TelemetryRecord is a rich per-step measurement reported by the simulator.
type TelemetryRecord struct {
	AttemptID      string
	UserID         string
	SkillID        string
	StepNumber     int
	ExpectedAction string
	ActualAction   string
	Success        bool
	HoldDurationMs int64
	PeakForce      float64
	DistanceM      float64
	AssistUsed     bool
	Timestamp      time.Time
}

// UserRepo manages trainee records.
type UserRepo interface {
	// Create registers a user. Idempotent: an existing record is returned
	// unchanged.
	Create(ctx context.Context, userID string) (*UserRecord, error)

	// Get returns a user, or nil if unknown.
	Get(ctx context.Context, userID string) (*UserRecord, error)

	// SetPhase updates the user's training phase and touches updated_at.
	SetPhase(ctx context.Context, userID, phase string) error

	// Touch bumps updated_at.
	Touch(ctx context.Context, userID string) error
}

// AttemptRepo is the event log: attempt sessions plus their append-only step,
// error and telemetry observations.
type AttemptRepo interface {
	// CreateAttempt opens a new in-progress attempt session.
	CreateAttempt(ctx context.Context, a *Attempt) error

	// GetAttempt returns an attempt, or nil if unknown.
	GetAttempt(ctx context.Context, attemptID string) (*Attempt, error)

	// CompleteAttempt transitions an in-progress attempt to completed,
	// setting success and end time. Returns false when the attempt was not
	// in progress; the condition is checked inside the UPDATE, so a racing
	// double completion loses deterministically.
	CompleteAttempt(ctx context.Context, attemptID string, success bool, endTime time.Time) (bool, error)

	// AppendStep records an input observation.
	AppendStep(ctx context.Context, rec StepRecord) error

	// AppendError records an error observation.
	AppendError(ctx context.Context, rec ErrorRecord) error

	// AppendTelemetry records a telemetry observation.
	AppendTelemetry(ctx context.Context, rec TelemetryRecord) error

	// AttemptsByUser returns all of a user's attempts, oldest first.
	AttemptsByUser(ctx context.Context, userID string) ([]Attempt, error)

	// AttemptsBySkill returns all attempts of a skill across users.
	AttemptsBySkill(ctx context.Context, skillID string) ([]Attempt, error)

	// AllAttempts returns every attempt session.
	AllAttempts(ctx context.Context) ([]Attempt, error)

	// StepsByAttempt returns an attempt's step observations in arrival order.
	StepsByAttempt(ctx context.Context, attemptID string) ([]StepRecord, error)

	// ErrorsByAttempt returns an attempt's error observations in arrival order.
	ErrorsByAttempt(ctx context.Context, attemptID string) ([]ErrorRecord, error)

	// ErrorsByUser returns all error observations for a user, in arrival order.
	ErrorsByUser(ctx context.Context, userID string) ([]ErrorRecord, error)

	// ErrorsBySkill returns all error observations for a skill across users.
	ErrorsBySkill(ctx context.Context, skillID string) ([]ErrorRecord, error)

	// ErrorsBySkillStep returns error observations at one (skill, step) pair.
	ErrorsBySkillStep(ctx context.Context, skillID string, stepNumber int) ([]ErrorRecord, error)

	// AllErrors returns every error observation.
	AllErrors(ctx context.Context) ([]ErrorRecord, error)
}
