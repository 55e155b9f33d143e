// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptSessionsColumns holds the columns for the "attempt_sessions" table.
	AttemptSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed"}, Default: "in_progress"},
		{Name: "success", Type: field.TypeBool, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
	}
	// AttemptSessionsTable holds the schema information for the "attempt_sessions" table.
	AttemptSessionsTable = &schema.Table{
		Name:       "attempt_sessions",
		Columns:    AttemptSessionsColumns,
		PrimaryKey: []*schema.Column{AttemptSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptsession_attempt_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptSessionsColumns[1]},
			},
			{
				Name:    "attemptsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptSessionsColumns[2]},
			},
			{
				Name:    "attemptsession_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptSessionsColumns[3]},
			},
			{
				Name:    "attemptsession_status",
				Unique:  false,
				Columns: []*schema.Column{AttemptSessionsColumns[4]},
			},
			{
				Name:    "attemptsession_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptSessionsColumns[2], AttemptSessionsColumns[3]},
			},
		},
	}
	// ErrorEventsColumns holds the columns for the "error_events" table.
	ErrorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "error_type", Type: field.TypeString},
		{Name: "expected_action", Type: field.TypeString},
		{Name: "actual_action", Type: field.TypeString},
	}
	// ErrorEventsTable holds the schema information for the "error_events" table.
	ErrorEventsTable = &schema.Table{
		Name:       "error_events",
		Columns:    ErrorEventsColumns,
		PrimaryKey: []*schema.Column{ErrorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "errorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[1]},
			},
			{
				Name:    "errorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[2]},
			},
			{
				Name:    "errorevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[3]},
			},
			{
				Name:    "errorevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[4]},
			},
			{
				Name:    "errorevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[5]},
			},
			{
				Name:    "errorevent_skill_id_step_number",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[5], ErrorEventsColumns[6]},
			},
			{
				Name:    "errorevent_error_type",
				Unique:  false,
				Columns: []*schema.Column{ErrorEventsColumns[7]},
			},
		},
	}
	// StepEventsColumns holds the columns for the "step_events" table.
	StepEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "expected_input", Type: field.TypeString},
		{Name: "actual_input", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// StepEventsTable holds the schema information for the "step_events" table.
	StepEventsTable = &schema.Table{
		Name:       "step_events",
		Columns:    StepEventsColumns,
		PrimaryKey: []*schema.Column{StepEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stepevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[1]},
			},
			{
				Name:    "stepevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[2]},
			},
			{
				Name:    "stepevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[3]},
			},
			{
				Name:    "stepevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[4]},
			},
			{
				Name:    "stepevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[5]},
			},
			{
				Name:    "stepevent_skill_id_step_number",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[5], StepEventsColumns[6]},
			},
		},
	}
	// TelemetryEventsColumns holds the columns for the "telemetry_events" table.
	TelemetryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "expected_action", Type: field.TypeString, Nullable: true},
		{Name: "actual_action", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "hold_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "peak_force", Type: field.TypeFloat64, Default: 0},
		{Name: "distance_m", Type: field.TypeFloat64, Default: 0},
		{Name: "assist_used", Type: field.TypeBool, Default: false},
	}
	// TelemetryEventsTable holds the schema information for the "telemetry_events" table.
	TelemetryEventsTable = &schema.Table{
		Name:       "telemetry_events",
		Columns:    TelemetryEventsColumns,
		PrimaryKey: []*schema.Column{TelemetryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[1]},
			},
			{
				Name:    "telemetryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[2]},
			},
			{
				Name:    "telemetryevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[3]},
			},
			{
				Name:    "telemetryevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[4]},
			},
			{
				Name:    "telemetryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "current_phase", Type: field.TypeString, Default: "Foundation"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_user_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptSessionsTable,
		ErrorEventsTable,
		StepEventsTable,
		TelemetryEventsTable,
		UsersTable,
	}
)

func init() {
}
