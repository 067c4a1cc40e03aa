package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type line struct {
	ID      int    `json:"id" validate:"gt=0"`
	Details string `json:"details" validate:"required,max=10"`
}

type request struct {
	Name  string `json:"name" validate:"required"`
	Lines []line `json:"lines" validate:"unique=ID,dive"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		in      request
		wantErr string
	}{
		{
			name: "valid",
			in:   request{Name: "x", Lines: []line{{ID: 1, Details: "ok"}}},
		},
		{
			name:    "missing name",
			in:      request{Lines: []line{{ID: 1, Details: "ok"}}},
			wantErr: "name is required",
		},
		{
			name:    "details too long",
			in:      request{Name: "x", Lines: []line{{ID: 1, Details: strings.Repeat("a", 11)}}},
			wantErr: "lines[0].details must not exceed 10 characters",
		},
		{
			name:    "non positive id",
			in:      request{Name: "x", Lines: []line{{ID: 0, Details: "ok"}}},
			wantErr: "lines[0].id must be greater than 0",
		},
		{
			name:    "duplicate ids",
			in:      request{Name: "x", Lines: []line{{ID: 1, Details: "a"}, {ID: 1, Details: "b"}}},
			wantErr: "lines must not contain duplicates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
