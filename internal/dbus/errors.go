package dbus

import "fmt"

// UnreachableError is returned when the bus or the destination peer cannot
// be reached at all (no connection, no such service, owner gone).
type UnreachableError struct {
	Dest string
	Err  error
}

func (e *UnreachableError) Error() string {
	if e.Dest == "" {
		return fmt.Sprintf("dbus: bus unreachable: %v", e.Err)
	}
	return fmt.Sprintf("dbus: %s unreachable: %v", e.Dest, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// TimeoutError is returned when a D-Bus call exceeds its deadline.
type TimeoutError struct {
	Method string
}

func (e *TimeoutError) Error() string {
	if e.Method == "" {
		return "dbus: call timed out"
	}
	return "dbus: call timed out: " + e.Method
}

// RejectedError is returned when the peer answers a call with a D-Bus error
// reply. Name carries the D-Bus error name (e.g. ...UnknownMethod) so that
// callers can tell "not implemented" apart from "refused this argument".
type RejectedError struct {
	Method string
	Name   string
	Err    error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("dbus: %s rejected by peer (%s): %v", e.Method, e.Name, e.Err)
}

func (e *RejectedError) Unwrap() error { return e.Err }

// MalformedReplyError is returned when a reply arrives but its body does not
// match the signature the caller asked Store to fill.
type MalformedReplyError struct {
	What string
	Err  error
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("dbus: malformed reply for %s: %v", e.What, e.Err)
}

func (e *MalformedReplyError) Unwrap() error { return e.Err }

// IsUnknownMember reports whether the peer rejected the call because the
// member does not exist on its side.
func (e *RejectedError) IsUnknownMember() bool {
	switch e.Name {
	case ERR_UNKNOWN_METHOD,
		DBUS_ERROR_PREFIX + "UnknownProperty",
		DBUS_ERROR_PREFIX + "UnknownInterface",
		DBUS_ERROR_PREFIX + "UnknownObject",
		DBUS_ERROR_PREFIX + "NotSupported":
		return true
	}
	return false
}
