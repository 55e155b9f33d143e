package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// indexEntry is one row of the catalog directory's _index.json.
type indexEntry struct {
	SkillID    string `json:"skill_id"`
	Title      string `json:"title"`
	Level      string `json:"level"`
	TotalSteps int    `json:"total_steps"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledSkillSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		raw, err := json.Marshal(skillDocSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://skill-document.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://skill-document.json")
	})
	return compiledSchema, compileErr
}

// Load reads a catalog directory: an _index.json listing plus one JSON
// document per skill, each validated against the skill document schema.
func Load(dir string) (*Catalog, error) {
	indexPath := filepath.Join(dir, "_index.json")
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}

	var index []indexEntry
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("parse catalog index: %w", err)
	}

	skills := make([]Skill, 0, len(index))
	for _, entry := range index {
		sk, err := loadSkillDoc(filepath.Join(dir, entry.SkillID+".json"))
		if err != nil {
			return nil, fmt.Errorf("skill %s: %w", entry.SkillID, err)
		}
		skills = append(skills, *sk)
	}

	return New(skills), nil
}

// loadSkillDoc reads and validates one per-skill document.
func loadSkillDoc(path string) (*Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	schema, err := compiledSkillSchema()
	if err != nil {
		return nil, fmt.Errorf("compile skill schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var sk Skill
	if err := json.Unmarshal(raw, &sk); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// Backfill actions for documents that predate the expected_action field.
	for i := range sk.Steps {
		st := &sk.Steps[i]
		if st.ExpectedAction == "" && len(st.ExpectedInputs) > 0 {
			st.ExpectedAction = ActionForKey(st.ExpectedInputs[0])
		}
	}
	return &sk, nil
}

// Save writes the catalog out as a directory Load can read back.
func Save(dir string, c *Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	index := make([]indexEntry, 0, c.Len())
	for _, sk := range c.Skills() {
		index = append(index, indexEntry{
			SkillID:    sk.ID,
			Title:      sk.Title,
			Level:      string(sk.Level),
			TotalSteps: sk.TotalSteps(),
		})
		raw, err := json.MarshalIndent(sk, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal skill %s: %w", sk.ID, err)
		}
		path := filepath.Join(dir, sk.ID+".json")
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write skill %s: %w", sk.ID, err)
		}
	}

	raw, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "_index.json"), raw, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
