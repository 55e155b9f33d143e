// Package taxonomy defines the fixed catalog of recognized error types.
// Every ErrorEvent carries one of these kinds; anything else is rejected at
// recording time.
package taxonomy

import "sort"

// Severity grades how dangerous an error kind is for the trainee.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ErrorType describes one way an observed action can diverge from the
// expected one.
type ErrorType struct {
	ID          string
	Severity    Severity
	Description string
}

// registry is the package-level error type registry, keyed by ID.
var registry map[string]*ErrorType

// sortedIDs caches the IDs in lexicographic order for deterministic listings.
var sortedIDs []string

func init() {
	registry = make(map[string]*ErrorType, len(seedErrorTypes))
	for i := range seedErrorTypes {
		et := &seedErrorTypes[i]
		registry[et.ID] = et
		sortedIDs = append(sortedIDs, et.ID)
	}
	sort.Strings(sortedIDs)
}

// Lookup returns an error type by ID, or nil if not recognized.
func Lookup(id string) *ErrorType {
	return registry[id]
}

// Valid reports whether id names a recognized error type.
func Valid(id string) bool {
	_, ok := registry[id]
	return ok
}

// All returns every error type, sorted by ID.
func All() []*ErrorType {
	result := make([]*ErrorType, 0, len(sortedIDs))
	for _, id := range sortedIDs {
		result = append(result, registry[id])
	}
	return result
}
