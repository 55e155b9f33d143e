package catalog

// Builtin returns the wheelchair skills testing battery the system ships
// with. Step sequences follow the WST item protocol; base success rates come
// from pilot session data and drive the demo-data generator.
func Builtin() *Catalog {
	return New(builtinSkills())
}

func builtinSkills() []Skill {
	return []Skill{
		skill("a01_10m_forward", "Rolls forwards 10m", LevelBeginner, 0.85,
			"move_forward", "move_forward", "brake"),
		skill("a02_2m_backward", "Rolls backwards 2m", LevelBeginner, 0.80,
			"move_backward", "move_backward", "brake"),
		skill("a03_5m_backward", "Rolls backwards 5m", LevelBeginner, 0.75,
			"move_backward", "move_backward", "brake"),
		skill("a04_turn_backward_90", "Turns while moving backwards 90deg", LevelIntermediate, 0.60,
			"move_backward", "turn_left", "move_backward", "brake"),
		skill("a05_turn_in_place_180", "Turns in place 180deg", LevelIntermediate, 0.70,
			"turn_left", "turn_left", "brake"),
		skill("a06_sideways_maneuver", "Maneuvers sideways 0.5m", LevelAdvanced, 0.45,
			"turn_right", "move_forward", "turn_left", "move_forward"),
		skill("a17_ascend_10deg", "Ascends 10deg incline", LevelIntermediate, 0.65,
			"move_forward", "move_forward", "brake"),
		skill("a18_descend_10deg", "Descends 10deg incline", LevelIntermediate, 0.60,
			"move_forward", "brake", "move_forward", "brake"),
		skill("a21_gap_15cm", "Gets over gap 15cm", LevelAdvanced, 0.50,
			"move_forward", "pop_casters", "move_forward", "brake"),
		skill("a25_curb_up_15cm", "Ascends curb 15cm", LevelAdvanced, 0.40,
			"move_forward", "pop_casters", "move_forward", "move_forward", "brake"),
		skill("a26_curb_down_15cm", "Descends curb 15cm", LevelAdvanced, 0.35,
			"move_backward", "pop_casters", "move_backward", "brake"),
		skill("a27_wheelie_30sec", "Performs stationary wheelie 30sec", LevelEmergency, 0.25,
			"move_backward", "pop_casters", "brake", "brake"),
		skill("a28_wheelie_turn_180", "Turns in wheelie position 180deg", LevelEmergency, 0.20,
			"pop_casters", "turn_left", "turn_left", "brake"),
	}
}

// skill builds a Skill from an ordered action sequence, deriving the expected
// input key for each action from the control scheme.
func skill(id, title string, level Level, baseRate float64, actions ...string) Skill {
	steps := make([]Step, len(actions))
	for i, action := range actions {
		steps[i] = Step{
			Number:         i + 1,
			Instruction:    instructionFor(action),
			ExpectedInputs: []string{KeyForAction(action)},
			ExpectedAction: action,
		}
	}
	return Skill{ID: id, Title: title, Level: level, Steps: steps, BaseSuccessRate: baseRate}
}

func instructionFor(action string) string {
	switch action {
	case "move_forward":
		return "Push forward on both handrims"
	case "move_backward":
		return "Pull backward on both handrims"
	case "turn_left":
		return "Turn left by holding the left handrim"
	case "turn_right":
		return "Turn right by holding the right handrim"
	case "brake":
		return "Brake and hold position"
	case "pop_casters":
		return "Pop the front casters"
	default:
		return "Perform " + action
	}
}
