package catalog

import (
	"sort"
	"strings"
)

// InputAction pairs a simulator key with the physical action it drives.
type InputAction struct {
	Key         string `json:"key"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// inputMapping is the simulator control scheme.
var inputMapping = map[string]InputAction{
	"W":     {Key: "W", Action: "move_forward", Description: "Push wheelchair forward"},
	"S":     {Key: "S", Action: "move_backward", Description: "Push wheelchair backward"},
	"A":     {Key: "A", Action: "turn_left", Description: "Turn wheelchair left"},
	"D":     {Key: "D", Action: "turn_right", Description: "Turn wheelchair right"},
	"SPACE": {Key: "SPACE", Action: "brake", Description: "Stop and hold position"},
	"X":     {Key: "X", Action: "pop_casters", Description: "Lift front casters"},
	"V":     {Key: "V", Action: "lean_forward", Description: "Lean torso forward"},
	"B":     {Key: "B", Action: "lean_backward", Description: "Lean torso backward"},
	"Q":     {Key: "Q", Action: "left_wheel", Description: "Push left handrim only"},
	"E":     {Key: "E", Action: "right_wheel", Description: "Push right handrim only"},
	"C":     {Key: "C", Action: "balance", Description: "Re-center balance"},
}

// ActionForKey returns the action a key drives, or "unknown".
func ActionForKey(key string) string {
	if ia, ok := inputMapping[key]; ok {
		return ia.Action
	}
	return "unknown"
}

// KeyForAction returns the primary key that drives an action, or "".
func KeyForAction(action string) string {
	for _, ia := range inputMapping {
		if ia.Action == action {
			return ia.Key
		}
	}
	return ""
}

// InputMapping returns the full control scheme, sorted by key.
func InputMapping() []InputAction {
	out := make([]InputAction, 0, len(inputMapping))
	for _, ia := range inputMapping {
		out = append(out, ia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// keywordInputs maps instruction keywords to the inputs they imply. Checked
// in declaration order, first match wins, so specific phrases ("turn left",
// "lean back") must come before their generic substrings ("turn", "back").
var keywordInputs = []struct {
	keyword string
	inputs  []string
}{
	{"turn left", []string{"A"}},
	{"left turn", []string{"A"}},
	{"turn right", []string{"D"}},
	{"right turn", []string{"D"}},
	{"lean forward", []string{"V"}},
	{"chest toward", []string{"V"}},
	{"lean back", []string{"B"}},
	{"left wheel", []string{"Q"}},
	{"left rim", []string{"Q"}},
	{"right wheel", []string{"E"}},
	{"right rim", []string{"E"}},
	{"pop casters", []string{"X"}},
	{"casters up", []string{"X"}},
	{"tip casters", []string{"X"}},
	{"caster", []string{"X"}},
	{"pop", []string{"X"}},
	{"wheelie", []string{"X", "B"}},
	{"rock", []string{"V", "B"}},
	{"back up", []string{"S"}},
	{"backward", []string{"S"}},
	{"back", []string{"S"}},
	{"forward", []string{"W"}},
	{"approach", []string{"W"}},
	{"push", []string{"W"}},
	{"momentum", []string{"W"}},
	{"turn", []string{"A", "D"}},
	{"pivot", []string{"A", "D"}},
	{"stop", []string{"SPACE"}},
	{"brake", []string{"SPACE"}},
	{"stabilize", []string{"SPACE"}},
	{"balance", []string{"C"}},
	{"center", []string{"C"}},
}

// ExtractExpectedInputs derives the expected inputs for a step from its
// instruction text. Falls back to forward motion when nothing matches, so a
// parsed step is never inputless.
func ExtractExpectedInputs(instruction string) []string {
	lower := strings.ToLower(instruction)
	for _, ki := range keywordInputs {
		if strings.Contains(lower, ki.keyword) {
			out := make([]string, len(ki.inputs))
			copy(out, ki.inputs)
			return out
		}
	}
	return []string{"W"}
}
