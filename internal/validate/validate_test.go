package validate

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Acme Corp", "Acme Corp"},
		{"punctuation kept", "Acme, Inc!", "Acme, Inc!"},
		{"forbidden chars stripped", `Acme<Corp>:"/\|?*`, "AcmeCorp"},
		{"whitespace trimmed", "  Acme Corp  ", "Acme Corp"},
		{"empty input", "", FallbackClientName},
		{"whitespace only", "   \t ", FallbackClientName},
		{"forbidden only", `<>:"/\|?*`, FallbackClientName},
		{"forbidden and whitespace", ` <> `, FallbackClientName},
		{"unicode preserved", "Café München", "Café München"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientName(tt.input))
		})
	}
}

func TestClientNameStripsAllForbiddenCharacters(t *testing.T) {
	for _, c := range `<>:"/\|?*` {
		input := "Acme" + string(c) + "Corp"
		got := ClientName(input)
		if strings.ContainsRune(got, c) {
			t.Errorf("ClientName(%q) = %q still contains %q", input, got, c)
		}
	}
}

func TestClientNameTruncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := ClientName(long)

	assert.Len(t, got, MaxClientNameLength)
	assert.True(t, strings.HasPrefix(long, got), "truncated name must be a prefix of the input")
}

func TestClientNameTruncationAfterStripping(t *testing.T) {
	// Forbidden characters are removed before the length limit applies.
	input := strings.Repeat("a?", 60)
	got := ClientName(input)

	assert.Equal(t, strings.Repeat("a", MaxClientNameLength), got)
}

func TestHorizon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain number", "8", 8},
		{"leading whitespace", " 12 ", 12},
		{"lower bound", "1", 1},
		{"upper bound", "52", 52},
		{"clamped low", "0", 1},
		{"clamped negative", "-3", 1},
		{"clamped high", "100", 52},
		{"empty input", "", DefaultHorizonWeeks},
		{"not a number", "six", DefaultHorizonWeeks},
		{"float", "4.5", DefaultHorizonWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Horizon(tt.input))
		})
	}
}

func TestHorizonClampFormula(t *testing.T) {
	// For all integers n the result is max(1, min(n, 52)).
	for _, n := range []int{-100, -1, 0, 1, 2, 26, 51, 52, 53, 1000} {
		want := n
		if want < MinHorizonWeeks {
			want = MinHorizonWeeks
		}
		if want > MaxHorizonWeeks {
			want = MaxHorizonWeeks
		}
		assert.Equal(t, want, Horizon(strconv.Itoa(n)), "n=%d", n)
	}
}

func TestFilename(t *testing.T) {
	assert.NoError(t, Filename("credentials.json"))
	assert.NoError(t, Filename("token.json"))

	assert.Error(t, Filename(""))
	assert.Error(t, Filename("  "))
	assert.Error(t, Filename("../credentials.json"))
	assert.Error(t, Filename("/etc/credentials.json"))
	assert.Error(t, Filename(`secrets\token.json`))
	assert.Error(t, Filename("."))
	assert.Error(t, Filename(".."))
}
