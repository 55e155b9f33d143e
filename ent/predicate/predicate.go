// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptSession is the predicate function for attemptsession builders.
type AttemptSession func(*sql.Selector)

// ErrorEvent is the predicate function for errorevent builders.
type ErrorEvent func(*sql.Selector)

// StepEvent is the predicate function for stepevent builders.
type StepEvent func(*sql.Selector)

// TelemetryEvent is the predicate function for telemetryevent builders.
type TelemetryEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
