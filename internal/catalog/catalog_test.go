package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	assert.Equal(t, 13, c.Len())

	sk := c.ByID("a02_2m_backward")
	require.NotNil(t, sk)
	assert.Equal(t, "Rolls backwards 2m", sk.Title)
	assert.Equal(t, LevelBeginner, sk.Level)
	require.Len(t, sk.Steps, 3)
	assert.Equal(t, "move_backward", sk.Steps[0].ExpectedAction)
	assert.Equal(t, []string{"S"}, sk.Steps[0].ExpectedInputs)
	assert.Equal(t, "brake", sk.Steps[2].ExpectedAction)
}

func TestByIDUnknown(t *testing.T) {
	c := Builtin()
	assert.Nil(t, c.ByID("a99_moonwalk"))
	assert.False(t, c.Has("a99_moonwalk"))
}

func TestSkillsSortedByID(t *testing.T) {
	c := Builtin()
	skills := c.Skills()
	for i := 1; i < len(skills); i++ {
		assert.Less(t, skills[i-1].ID, skills[i].ID)
	}
}

func TestByLevels(t *testing.T) {
	c := Builtin()
	beginner := c.ByLevels(LevelBasic, LevelBeginner)
	require.NotEmpty(t, beginner)
	for _, sk := range beginner {
		assert.Equal(t, LevelBeginner, sk.Level)
	}
	emergency := c.ByLevels(LevelEmergency)
	assert.Len(t, emergency, 2)
}

func TestExtractExpectedInputs(t *testing.T) {
	tests := []struct {
		instruction string
		want        []string
	}{
		{"Push forward on both handrims", []string{"W"}},
		{"Roll backward slowly", []string{"S"}},
		{"Turn left around the cone", []string{"A"}},
		{"Pop casters before the curb", []string{"X"}},
		{"Brake and hold", []string{"SPACE"}},
		{"Do something unspecified", []string{"W"}}, // fallback
	}
	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExpectedInputs(tt.instruction))
		})
	}
}

func TestExtractExpectedInputsGenericTurn(t *testing.T) {
	inputs := ExtractExpectedInputs("Turn to face the ramp")
	assert.Equal(t, []string{"A", "D"}, inputs)
}

func TestActionKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "move_forward", ActionForKey("W"))
	assert.Equal(t, "unknown", ActionForKey("F12"))
	assert.Equal(t, "X", KeyForAction("pop_casters"))
	assert.Equal(t, "", KeyForAction("levitate"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, Builtin()))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 13, loaded.Len())

	orig := Builtin().ByID("a25_curb_up_15cm")
	got := loaded.ByID("a25_curb_up_15cm")
	require.NotNil(t, got)
	assert.Equal(t, orig.Title, got.Title)
	assert.Equal(t, orig.Level, got.Level)
	assert.Equal(t, len(orig.Steps), len(got.Steps))
	assert.Equal(t, orig.Steps[1].ExpectedAction, got.Steps[1].ExpectedAction)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, Builtin()))

	// Corrupt one skill document: level outside the allowed enum.
	bad := `{"skill_id":"a01_10m_forward","title":"x","level":"impossible","steps":[]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a01_10m_forward.json"), []byte(bad), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a01_10m_forward")
}

func TestParseSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "skills.jsonl")
	lines := `{"id":"b01_ramp","title":"Ascends ramp","level":"intermediate","type":"skill","structured":{"steps":[{"n":1,"instruction":"Push forward to build momentum","cues":["even pressure"]},{"n":2,"instruction":"Brake at the top"}]}}
{"id":"doc1","title":"Safety notes","level":"basic","type":"document"}
`
	require.NoError(t, os.WriteFile(src, []byte(lines), 0o644))

	c, err := ParseSource(src)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	sk := c.ByID("b01_ramp")
	require.NotNil(t, sk)
	require.Len(t, sk.Steps, 2)
	assert.Equal(t, []string{"W"}, sk.Steps[0].ExpectedInputs)
	assert.Equal(t, "move_forward", sk.Steps[0].ExpectedAction)
	assert.Equal(t, []string{"SPACE"}, sk.Steps[1].ExpectedInputs)
	assert.Equal(t, "brake", sk.Steps[1].ExpectedAction)
}
