package catalog

// skillDocSchema validates a parsed per-skill document before it is admitted
// into the catalog. Malformed authoring output fails loudly at load time
// instead of surfacing as nil steps during an attempt.
var skillDocSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"skill_id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"level": map[string]any{
			"type": "string",
			"enum": []any{"basic", "beginner", "intermediate", "advanced", "emergency"},
		},
		"total_steps": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"steps": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"step_number": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"instruction": map[string]any{
						"type": "string",
					},
					"cues": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"expected_inputs": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"expected_action": map[string]any{
						"type": "string",
					},
				},
				"required": []any{"step_number", "instruction"},
			},
		},
	},
	"required": []any{"skill_id", "title", "level", "steps"},
}
