package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"30"`, want: "30"},
		{in: `30`, want: "30"},
		{in: `1e3`, want: "1000"},
		{in: `4.5e1`, want: "45"},
		{in: `4.5`, want: "4.5"},
		{in: `-2`, want: "-2"},
		{in: `true`, want: "true"},
		{in: `null`, want: ""},
	}

	for _, tt := range tests {
		var v formValue
		require.NoError(t, json.Unmarshal([]byte(tt.in), &v), tt.in)
		assert.Equal(t, tt.want, string(v), tt.in)
	}
}

func TestFormValue_RejectsCompositeValues(t *testing.T) {
	for _, in := range []string{`{"a":1}`, `[1,2]`} {
		var v formValue
		assert.Error(t, json.Unmarshal([]byte(in), &v), in)
	}
}
