package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"float", 3.5, 3.5, true},
		{"int", 7, 7, true},
		{"numeric string", "12", 12, true},
		{"decimal string", "2.5", 2.5, true},
		{"string with trailing junk", "4abc", 4, true},
		{"leading whitespace", "  8", 8, true},
		{"negative", "-3", -3, true},
		{"exponent", "1e2", 100, true},
		{"exponent without digits", "4e", 4, true},
		{"plain text", "often", 0, false},
		{"empty string", "", 0, false},
		{"bare sign", "-", 0, false},
		{"bare dot", ".", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"string set", []interface{}{"a", "b"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NumericValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "often", ValueKey("often"))
	assert.Equal(t, "4", ValueKey(float64(4)))
	assert.Equal(t, "2.5", ValueKey(2.5))
	assert.Equal(t, "true", ValueKey(true))
	assert.Equal(t, "a,b", ValueKey([]interface{}{"a", "b"}))
	assert.Equal(t, "null", ValueKey(nil))
}
