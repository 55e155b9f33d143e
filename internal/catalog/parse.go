package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// sourceRecord is one line of the authored skills.jsonl corpus.
type sourceRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Level      string `json:"level"`
	Type       string `json:"type"`
	Structured struct {
		Steps []struct {
			N           int      `json:"n"`
			Instruction string   `json:"instruction"`
			Cues        []string `json:"cues"`
		} `json:"steps"`
	} `json:"structured"`
}

// ParseSource reads an authored skills.jsonl corpus and turns each skill
// record into a catalog Skill, deriving expected inputs from the instruction
// text. Records that are not of type "skill" are ignored.
func ParseSource(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open skill source: %w", err)
	}
	defer f.Close()

	var skills []Skill
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec sourceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.Type != "skill" {
			continue
		}
		skills = append(skills, parseRecord(rec))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan skill source: %w", err)
	}

	return New(skills), nil
}

func parseRecord(rec sourceRecord) Skill {
	steps := make([]Step, 0, len(rec.Structured.Steps))
	for _, src := range rec.Structured.Steps {
		inputs := ExtractExpectedInputs(src.Instruction)
		steps = append(steps, Step{
			Number:         src.N,
			Instruction:    src.Instruction,
			Cues:           src.Cues,
			ExpectedInputs: inputs,
			ExpectedAction: ActionForKey(inputs[0]),
		})
	}
	return Skill{
		ID:    rec.ID,
		Title: rec.Title,
		Level: Level(rec.Level),
		Steps: steps,
	}
}
