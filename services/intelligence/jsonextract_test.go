package ai

import (
	"math"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONObjects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "bare", raw: `{"a":1}`, want: []string{`{"a":1}`}},
		{name: "fenced with prose", raw: "Result:\n```json\n{\"a\":{\"b\":2}}\n```\nthanks", want: []string{`{"a":{"b":2}}`}},
		{name: "braces inside strings", raw: `x {"a":"}{\"}"} {"b":2}`, want: []string{`{"a":"}{\"}"}`, `{"b":2}`}},
		{name: "stray close first", raw: `} {"a":1}`, want: []string{`{"a":1}`}},
		{name: "placeholder before object", raw: `fill {placeholder} in: {"a":1}`, want: []string{`{placeholder}`, `{"a":1}`}},
		{name: "unclosed outer", raw: `{ {"a":1}`, want: []string{`{"a":1}`}},
		{name: "none", raw: "no json here"},
		{name: "unterminated", raw: `{"a":1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonObjects(tt.raw))
		})
	}
}

func TestDecodeFirstObject(t *testing.T) {
	fields, err := decodeFirstObject([]string{`{placeholder}`, `{"a":1}`, `{"b":2}`})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, fields)

	_, err = decodeFirstObject([]string{`{placeholder}`, `{also not json}`})
	assert.Error(t, err)

	_, err = decodeFirstObject(nil)
	assert.Error(t, err)
}

func TestCoerceFloat(t *testing.T) {
	assert.Equal(t, 0.8, coerceFloat(0.8))
	assert.Equal(t, 0.25, coerceFloat(" 0.25 "))
	assert.True(t, math.IsNaN(coerceFloat("high")))
	assert.True(t, math.IsNaN(coerceFloat(nil)))
}

func TestCoerceStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, coerceStrings([]any{" a ", "", "b"}))
	assert.Equal(t, []string{"x", "y"}, coerceStrings("x, y,"))
	assert.Empty(t, coerceStrings(nil))
}

func TestResponseText(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	require.ErrorIs(t, err, ErrEmptyResponse)

	text, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}
