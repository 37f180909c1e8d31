package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriba-dev/scriba"
)

func TestSplitSyllables(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"MyTop5Names", []string{"My", "Top5", "Names"}},
		{"my-example_Name5Tag", []string{"my", "example", "Name5", "Tag"}},
		{"simple", []string{"simple"}},
		{"PascalCase", []string{"Pascal", "Case"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"kebab-case-name", []string{"kebab", "case", "name"}},
		{"HTTPServer", []string{"HTTPServer"}},
		{"version2go", []string{"version2", "go"}},
		{"x", []string{"x"}},
		{"__a--b__", []string{"a", "b"}},
		{"", nil},
		{"-_-", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSyllables(tt.input))
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UserStatus", "us"},
		{"OrderPaymentState", "ops"},
		{"Color", "c"},
		{"snake_case_name", "scn"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Initials(tt.input))
		})
	}
}

func TestToCase(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"my-example_name", "my-example_name"},
			{"AlreadyPascal", "AlreadyPascal"},
			{"", ""},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, ToCase(tt.input, CaseNone))
		}
	})

	t.Run("Pascal", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"my-example_name", "MyExampleName"},
			{"myTopName", "MyTopName"},
			{"MyTop5Names", "MyTop5Names"},
			{"snake_case", "SnakeCase"},
			{"x", "X"},
			{"", ""},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, ToCase(tt.input, CasePascal))
		}
	})

	t.Run("ScreamingSnake", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"my-example_name", "MY_EXAMPLE_NAME"},
			{"MyTop5Names", "MY_TOP5_NAMES"},
			{"simple", "SIMPLE"},
			{"", ""},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, ToCase(tt.input, CaseScreamingSnake))
		}
	})

	t.Run("unknown style panics with typed error", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, scriba.IsUnknownCaseStyle(err))
		}()
		ToCase("x", CaseStyle(42))
	})
}

func TestCaseStyleString(t *testing.T) {
	tests := []struct {
		style    CaseStyle
		expected string
	}{
		{CaseNone, "none"},
		{CasePascal, "pascal"},
		{CaseScreamingSnake, "screaming-snake"},
		{CaseStyle(42), "CaseStyle(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.style.String())
	}
}

func TestIsSeparator(t *testing.T) {
	assert.True(t, isSeparator('_'))
	assert.True(t, isSeparator('-'))
	assert.False(t, isSeparator(' '))
	assert.False(t, isSeparator('a'))
	assert.False(t, isSeparator('1'))
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"units", "unit"},
		{"classes", "class"},
		{"properties", "property"},
		{"children", "child"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Singularize(tt.input))
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"unit", "units"},
		{"class", "classes"},
		{"property", "properties"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pluralize(tt.input))
		})
	}
}
