package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPairParams struct {
	UserID  string `param:"uid" validate:"required,max=64"`
	OtherID string `param:"auid" validate:"required,max=64"`
}

type testDateParams struct {
	Date string `param:"date" validate:"required,datetime=2006-01-02"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantTag   string
	}{
		{name: "valid pair", input: testPairParams{UserID: "alice", OtherID: "bob"}},
		{name: "missing user", input: testPairParams{OtherID: "bob"}, wantField: "uid", wantTag: "required"},
		{name: "oversized id", input: testPairParams{UserID: "alice", OtherID: strings.Repeat("x", 65)}, wantField: "auid", wantTag: "max"},
		{name: "valid date", input: testDateParams{Date: "2022-03-27"}},
		{name: "bad date", input: testDateParams{Date: "27/03/2022"}, wantField: "date", wantTag: "datetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, tt.wantTag, verrs[0].Tag)
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}
