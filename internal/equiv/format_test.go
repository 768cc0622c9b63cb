package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "small count", in: 543.33, want: "543"},
		{name: "thousands get separators", in: 271666.67, want: "271,667"},
		{name: "rounds half up", in: 18248.5, want: "18,249"},
		{name: "millions abbreviate", in: 1_500_000, want: "~1.5 million"},
		{name: "just under a million", in: 999_999.4, want: "999,999"},
		{name: "billions abbreviate", in: 2_300_000_000, want: "~2.3 billion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.in))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "10.0", FormatDecimal(10.0003))
	assert.Equal(t, "1,234.6", FormatDecimal(1234.56))
	assert.Equal(t, "0.3", FormatDecimal(0.25001))
}
