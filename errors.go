package enummap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrKeyNotSpecified reports that serialized input covered some keys but
// omitted at least one.
var ErrKeyNotSpecified = errors.New("key not specified")

// ErrUnknownKey reports that serialized input named a key outside the key
// type's domain.
var ErrUnknownKey = errors.New("unknown key")

// DecodeError reports malformed serialized input for a map over Type.
// Key, when non-empty, is the textual form of the offending (or missing)
// key. Match the condition with errors.Is against ErrKeyNotSpecified or
// ErrUnknownKey.
type DecodeError struct {
	Type reflect.Type
	Key  string
	Msg  string
	Err  error
}

func decodeErrf(typ reflect.Type, key string, err error, format string, args ...any) error {
	return &DecodeError{typ, key, fmt.Sprintf(format, args...), err}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Type.String())
	if e.Key != "" {
		buf.WriteByte('/')
		buf.WriteString(e.Key)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
		if e.Err != nil {
			buf.WriteString(": ")
			buf.WriteString(e.Err.Error())
		}
	} else if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}
