package selectfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToggle verifies values are appended when absent and removed when present.
func TestToggle(t *testing.T) {
	assert.Equal(t, []string{"a"}, Toggle(nil, "a"))
	assert.Equal(t, []string{"a", "b"}, Toggle([]string{"a"}, "b"))
	assert.Equal(t, []string{"b"}, Toggle([]string{"a", "b"}, "a"))
	assert.Equal(t, []string{}, Toggle([]string{"a"}, "a"))
}

// TestToggle_RemovesEveryOccurrence verifies duplicated values are all dropped.
func TestToggle_RemovesEveryOccurrence(t *testing.T) {
	assert.Equal(t, []int{2}, Toggle([]int{1, 2, 1}, 1))
}

// TestToggle_DoesNotAliasInput verifies the input slice is left untouched.
func TestToggle_DoesNotAliasInput(t *testing.T) {
	in := make([]int, 2, 8)
	in[0], in[1] = 1, 2
	out := Toggle(in, 3)
	out[0] = 99
	assert.Equal(t, []int{1, 2}, in)
}

// TestToggle_Involution verifies toggling twice restores the set.
func TestToggle_Involution(t *testing.T) {
	start := []string{"x", "y"}
	for _, v := range []string{"x", "z"} {
		got := Toggle(Toggle(start, v), v)
		assert.ElementsMatch(t, start, got, "toggle %q twice", v)
	}
}

// TestSingle_Pick verifies a single pick reports the value and closes.
func TestSingle_Pick(t *testing.T) {
	var got []string
	sel := Single[string]{OnChanged: func(v string) { got = append(got, v) }}
	assert.True(t, sel.pick("a"))
	assert.True(t, sel.pick("a"), "re-picking the current value still reports it")
	assert.Equal(t, []string{"a", "a"}, got)
}

// TestSingle_PickWithoutHandler verifies a missing callback still closes.
func TestSingle_PickWithoutHandler(t *testing.T) {
	sel := Single[string]{}
	assert.False(t, sel.hasHandler())
	assert.True(t, sel.pick("a"))
}

// TestMulti_Pick verifies a multi pick reports the toggled slice and stays open.
func TestMulti_Pick(t *testing.T) {
	var got []string
	sel := Multi[string]{Values: []string{"a"}, OnChanged: func(v []string) { got = v }}
	assert.False(t, sel.pick("b"))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.False(t, sel.pick("a"))
	assert.Equal(t, []string{}, got)
	assert.Equal(t, []string{"a"}, sel.Values)
}

// TestSingleOf verifies the helper stores a copy of the value.
func TestSingleOf(t *testing.T) {
	v := "a"
	sel := SingleOf(v, nil)
	v = "b"
	if assert.NotNil(t, sel.Value) {
		assert.Equal(t, "a", *sel.Value)
	}
	assert.False(t, sel.hasHandler())
}
