package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantValue   int
		wantPresent bool
	}{
		{name: "integer", input: `7`, wantValue: 7, wantPresent: true},
		{name: "float truncates", input: `7.9`, wantValue: 7, wantPresent: true},
		{name: "numeric string", input: `"8"`, wantValue: 8, wantPresent: true},
		{name: "float string", input: `"6.5"`, wantValue: 6, wantPresent: true},
		{name: "padded string", input: `" 9 "`, wantValue: 9, wantPresent: true},
		{name: "garbage string", input: `"expert"`, wantValue: 0, wantPresent: false},
		{name: "null", input: `null`, wantValue: 0, wantPresent: false},
		{name: "bool", input: `true`, wantValue: 0, wantPresent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.wantValue, s.Int())
			assert.Equal(t, tt.wantPresent, s.Present())
		})
	}
}

func TestScoreMarshal(t *testing.T) {
	b, err := json.Marshal(ScoreOf(9))
	require.NoError(t, err)
	assert.Equal(t, `9`, string(b))

	// Unset scores still encode as a number, not null.
	b, err = json.Marshal(Score{})
	require.NoError(t, err)
	assert.Equal(t, `0`, string(b))
}

func TestYearsUnmarshal(t *testing.T) {
	var y Years
	require.NoError(t, json.Unmarshal([]byte(`3.5`), &y))
	assert.Equal(t, 3.5, y.Float())
	assert.True(t, y.Present())

	require.NoError(t, json.Unmarshal([]byte(`"4"`), &y))
	assert.Equal(t, 4.0, y.Float())

	require.NoError(t, json.Unmarshal([]byte(`"senior"`), &y))
	assert.False(t, y.Present())
	assert.Zero(t, y.Float())
}

func TestYearsMarshal(t *testing.T) {
	b, err := json.Marshal(YearsOf(3.5))
	require.NoError(t, err)
	assert.Equal(t, `3.5`, string(b))

	b, err = json.Marshal(YearsOf(4))
	require.NoError(t, err)
	assert.Equal(t, `4`, string(b))
}

func TestSkillDecodeToleratesScoreShapes(t *testing.T) {
	raw := `{"name":"Go","score":"9","category":"Language","description":"primary language"}`

	var skill Skill
	require.NoError(t, json.Unmarshal([]byte(raw), &skill))
	assert.Equal(t, "Go", skill.Name)
	assert.Equal(t, 9, skill.Score.Int())
	assert.True(t, skill.Score.Present())
}
