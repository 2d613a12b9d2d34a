package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{"valid four digits", "2580", false},
		{"valid six digits", "907613", false},
		{"too short", "123", true},
		{"too long", "1234567", true},
		{"letters rejected", "12a4", true},
		{"repeated digits rejected", "7777", true},
		{"known weak pin rejected", "1122", true},
		{"ascending run rejected", "3456", true},
		{"descending run rejected", "6543", true},
		{"long ascending run rejected", "123456", true},
		{"near-sequential allowed", "1357", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
