package taxonomy

// seedErrorTypes is the fixed 15-kind catalog. Severities match the skill
// testing protocol: anything that can tip or strike the trainee is high or
// critical, timing and extra-input slips are low.
var seedErrorTypes = []ErrorType{
	{
		ID:          "wrong_input",
		Severity:    SeverityMedium,
		Description: "Pressed a different key than the step expected",
	},
	{
		ID:          "wrong_direction",
		Severity:    SeverityMedium,
		Description: "Moved forward instead of backward or vice versa",
	},
	{
		ID:          "wrong_turn_direction",
		Severity:    SeverityMedium,
		Description: "Turned left instead of right or vice versa",
	},
	{
		ID:          "stopped_instead_of_moving",
		Severity:    SeverityMedium,
		Description: "Braked while the step expected continued motion",
	},
	{
		ID:          "moved_instead_of_stopping",
		Severity:    SeverityMedium,
		Description: "Kept rolling while the step expected a stop",
	},
	{
		ID:          "missed_pop_casters",
		Severity:    SeverityHigh,
		Description: "Did not lift the front casters before an obstacle",
	},
	{
		ID:          "timeout",
		Severity:    SeverityHigh,
		Description: "Step was not performed within the allowed window",
	},
	{
		ID:          "wrong_sequence",
		Severity:    SeverityMedium,
		Description: "Performed the right actions in the wrong order",
	},
	{
		ID:          "timing_error",
		Severity:    SeverityLow,
		Description: "Correct action performed too early or too late",
	},
	{
		ID:          "missing_input",
		Severity:    SeverityHigh,
		Description: "Expected action never observed",
	},
	{
		ID:          "extra_input",
		Severity:    SeverityLow,
		Description: "Unrequested action interleaved with the sequence",
	},
	{
		ID:          "incomplete_action",
		Severity:    SeverityMedium,
		Description: "Action started but released before completion",
	},
	{
		ID:          "balance_lost",
		Severity:    SeverityHigh,
		Description: "Trainee lost balance during the maneuver",
	},
	{
		ID:          "collision",
		Severity:    SeverityHigh,
		Description: "Wheelchair struck an obstacle or wall",
	},
	{
		ID:          "safety_violation",
		Severity:    SeverityCritical,
		Description: "Maneuver attempted without required safety posture",
	},
}
