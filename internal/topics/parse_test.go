package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawBareArray(t *testing.T) {
	got, err := ParseRaw(`[{"title":"Intro","startMs":0,"endMs":8000}]`)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Intro", got[0].Title)
	assert.Equal(t, float64(8000), got[0].EndMs)
}

func TestParseRawCodeFence(t *testing.T) {
	response := "```json\n[{\"title\":\"A\",\"startMs\":0,\"endMs\":1000},{\"title\":\"B\",\"startMs\":1000,\"endMs\":2000}]\n```"

	got, err := ParseRaw(response)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestParseRawWrapperObject(t *testing.T) {
	got, err := ParseRaw(`{"topics":[{"title":"A","startMs":0,"endMs":5000}]}`)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestParseRawSurroundingProse(t *testing.T) {
	response := `Here is the timeline you asked for:
[{"title":"A","startMs":0,"endMs":5000}]
Let me know if you need anything else.`

	got, err := ParseRaw(response)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestParseRawFiltersMalformed(t *testing.T) {
	response := `[
		{"title":"Good","startMs":0,"endMs":1000},
		{"title":"","startMs":1000,"endMs":2000},
		{"title":"BadNumbers","startMs":"one","endMs":2000},
		{"title":"AlsoGood","startMs":2000,"endMs":3000}
	]`

	got, err := ParseRaw(response)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Good", got[0].Title)
	assert.Equal(t, "AlsoGood", got[1].Title)
}

func TestParseRawInvalid(t *testing.T) {
	_, err := ParseRaw("I could not find any topics, sorry.")
	assert.Error(t, err)

	_, err = ParseRaw("")
	assert.Error(t, err)
}
