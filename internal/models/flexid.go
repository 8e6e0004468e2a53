package models

import (
	"bytes"
	"fmt"
)

// FlexID holds a record identifier that the backend serves either as a JSON
// number or as a string. The original token text is kept so the value
// round-trips exactly between display and action calls.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return fmt.Errorf("malformed id token %q", data)
		}
		*id = FlexID(data[1 : len(data)-1])
		return nil
	}
	*id = FlexID(data)
	return nil
}

func (id FlexID) String() string {
	return string(id)
}
