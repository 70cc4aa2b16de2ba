package jsonrepair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairUnbalanced(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "closers appended in reverse open order",
			input: `{"a":[1,2`,
			want:  `{"a":[1,2]}`,
		},
		{
			name:  "one missing closing brace",
			input: `{"daily_plans":[{"day":1,"activities":[{"time":"09:00"}]}],"total_budget":"60EUR"`,
			want:  `{"daily_plans":[{"day":1,"activities":[{"time":"09:00"}]}],"total_budget":"60EUR"}`,
		},
		{
			name:  "response cut off right after a list opens",
			input: `{"attractions":[`,
			want:  `{"attractions":[]}`,
		},
		{
			name:  "balanced input is untouched",
			input: `{"a":{"b":[1]}}`,
			want:  `{"a":{"b":[1]}}`,
		},
		{
			name:  "brackets inside strings are ignored",
			input: `{"note":"use [metro] {cheap}"`,
			want:  `{"note":"use [metro] {cheap}"}`,
		},
		{
			name:  "surplus closers are left alone",
			input: `{"a":1}}`,
			want:  `{"a":1}}`,
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RepairUnbalanced(tc.input))
		})
	}
}

func TestRepairedTruncationParses(t *testing.T) {
	// A response missing half its content still repairs to parseable JSON;
	// deciding whether the content is complete is the validator's job.
	repaired := RepairUnbalanced(`{"attractions":[`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &doc))
	assert.Contains(t, doc, "attractions")
}
