package gomap

import "fmt"

// MarshalError represents an error during normalization
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents an unsupported or mismatched type
type TypeError struct {
	FieldPath string
	GoType    string
	Message   string
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("unsupported type %s", e.GoType)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}
