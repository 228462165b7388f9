package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errUnsupportedFormValue = errors.New("expected a string, number, boolean or null")

// formValue accepts a JSON scalar or plain form text, so {"duration": 30},
// {"duration": "30"} and {"duration": 3e1} bind the same way. Numbers are
// rendered in plain decimal notation.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case len(raw) == 0:
		return errUnsupportedFormValue
	case bytes.Equal(raw, []byte("null")):
		*v = ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*v = formValue(s)
	case bytes.Equal(raw, []byte("true")), bytes.Equal(raw, []byte("false")):
		*v = formValue(raw)
	case raw[0] == '{' || raw[0] == '[':
		return errUnsupportedFormValue
	default:
		f, err := json.Number(raw).Float64()
		if err != nil {
			return err
		}
		*v = formValue(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}
