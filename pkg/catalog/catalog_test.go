package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/selectfield/pkg/selectfield"
)

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "valid.yaml"), c.Source)
	assert.Equal(t, []string{"countries", "priorities"}, c.Names())
	assert.Empty(t, c.Validate())

	countries, err := Options[string](c, "countries")
	require.NoError(t, err)
	assert.Equal(t, []selectfield.Option[string]{
		{Label: "United States", Value: "us"},
		{Label: "Canada", Value: "ca"},
		{Label: "Mexico", Value: "mx", Disabled: true},
	}, countries)

	priorities, err := Options[int](c, "priorities")
	require.NoError(t, err)
	require.Len(t, priorities, 3)
	assert.Equal(t, 3, priorities[2].Value)
	assert.Equal(t, "High", priorities[2].Label)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "malformed.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping of list names")
	assert.Contains(t, err.Error(), "malformed.yaml")
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"options/colors.yaml": {Data: []byte("colors:\n  - {label: Red, value: red}\n")},
	}
	c, err := LoadFS(fsys, "options/colors.yaml")
	require.NoError(t, err)
	assert.Equal(t, "options/colors.yaml", c.Source)
	assert.Equal(t, []selectfield.Option[string]{{Label: "Red", Value: "red"}}, MustOptions[string](c, "colors"))

	_, err = LoadFS(fsys, "missing.yaml")
	assert.Error(t, err)
	assert.Panics(t, func() { Must(LoadFS(fsys, "missing.yaml")) })
	assert.NotPanics(t, func() { Must(LoadFS(fsys, "options/colors.yaml")) })
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "a: [", "failed to parse catalog"},
		{"duplicate list", "a: []\na: []\n", `list "a" defined twice`},
		{"list not a sequence", "a: {label: x}\n", `failed to parse list "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Names())
	assert.Empty(t, c.Validate())
}

func TestOptions_Errors(t *testing.T) {
	c, err := Parse([]byte("sizes:\n  - {label: Small, value: s}\n  - {label: Huge}\n"))
	require.NoError(t, err)

	_, err = Options[string](c, "colors")
	assert.ErrorIs(t, err, ErrUnknownList)

	_, err = Options[string](c, "sizes")
	assert.ErrorIs(t, err, errMissingValue)

	c, err = Parse([]byte("sizes:\n  - {label: Small, value: s}\n"))
	require.NoError(t, err)
	_, err = Options[int](c, "sizes")
	assert.Error(t, err, "string value does not decode into int")

	assert.Panics(t, func() { MustOptions[int](c, "sizes") })
}

func TestValidate(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "problems.yaml"))
	require.NoError(t, err)

	problems := c.Validate()
	kinds := make([]ProblemKind, len(problems))
	for i, p := range problems {
		kinds[i] = p.Kind
	}
	assert.Equal(t, []ProblemKind{
		ProblemEmptyLabel,
		ProblemDuplicateLabel,
		ProblemDuplicateValue,
		ProblemMissingValue,
		ProblemComplexValue,
		ProblemEmptyList,
	}, kinds)

	dupValue := problems[2]
	assert.Equal(t, "sizes", dupValue.List)
	assert.Equal(t, 3, dupValue.Index)
	assert.Equal(t, 5, dupValue.Line)
	assert.False(t, dupValue.Warning())
	assert.Equal(t, `line 5: sizes[3]: value s already used by option 0 (duplicate-value)`, dupValue.String())

	assert.True(t, problems[1].Warning())
	assert.Equal(t, -1, problems[5].Index)
	assert.Equal(t, "empty: list has no options (empty-list)", problems[5].String())
}

func TestValidate_ValuesCompareByType(t *testing.T) {
	c, err := Parse([]byte("mixed:\n  - {label: One, value: 1}\n  - {label: One string, value: \"1\"}\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Validate())
}

func TestValidate_NumericSpellings(t *testing.T) {
	src := "nums:\n" +
		"  - {label: One, value: 1}\n" +
		"  - {label: Padded, value: 01}\n" +
		"  - {label: Hex, value: 0x1}\n" +
		"  - {label: Float, value: 1.0}\n" +
		"  - {label: Text, value: \"1\"}\n" +
		"  - {label: Half, value: 1.5}\n"
	c, err := Parse([]byte(src))
	require.NoError(t, err)

	problems := c.Validate()
	require.Len(t, problems, 3)
	for i, p := range problems {
		assert.Equal(t, ProblemDuplicateValue, p.Kind)
		assert.Equal(t, i+1, p.Index)
		assert.Contains(t, p.Message, "option 0")
	}
}

func TestNames_HandBuilt(t *testing.T) {
	c := &Catalog{Lists: map[string][]Entry{"b": nil, "a": nil}}
	assert.Equal(t, []string{"a", "b"}, c.Names())
}

func TestNames_ListReplacedByHand(t *testing.T) {
	c, err := Parse([]byte("zeta:\n  - {label: Z, value: z}\nalpha:\n  - {label: A, value: a}\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha"}, c.Names())

	c.Lists["beta"] = c.Lists["zeta"]
	delete(c.Lists, "zeta")

	assert.Equal(t, []string{"alpha", "beta"}, c.Names())
	for _, p := range c.Validate() {
		assert.NotEqual(t, "zeta", p.List)
	}
}
