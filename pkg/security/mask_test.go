package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard format", "123-45-6789", "***-**-6789"},
		{"no punctuation", "123456789", "*****6789"},
		{"spaces preserved", "123 45 6789", "*** ** 6789"},
		{"exactly four digits", "6789", "6789"},
		{"fewer than four digits", "123", "123"},
		{"empty", "", ""},
		{"already masked", "***-**-6789", "***-**-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskSSN(tt.in))
		})
	}
}

func TestMaskSSNIdempotent(t *testing.T) {
	once := MaskSSN("123-45-6789")
	assert.Equal(t, once, MaskSSN(once))
}
