package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	s := NewService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "phone number keeps the last two digits",
			input: "lead at +15551230001 replied",
			want:  "lead at ***01 replied",
		},
		{
			name:  "bearer token",
			input: "sent with Bearer eyJhbGciOiJIUzI1NiJ9",
			want:  "sent with Bearer ***",
		},
		{
			name:  "api key assignment",
			input: "access_token=EAAGxyzAbCdEfGh",
			want:  "access_token=***",
		},
		{
			name:  "clean text untouched",
			input: "no secrets here",
			want:  "no secrets here",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Mask(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	s := NewService()
	assert.Equal(t, "***01", s.MaskPhone("15551230001"))
	assert.Equal(t, "***", s.MaskPhone("1"))
	assert.Equal(t, "***", s.MaskPhone(""))
}
