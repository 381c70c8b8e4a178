package mpris

// NoPlayersError indicates that no MPRIS player is present on the bus
type NoPlayersError struct{}

func (e *NoPlayersError) Error() string {
	return "no MPRIS players found on the session bus"
}

// NoSuchPlayerError indicates that a selector resolved to nothing
type NoSuchPlayerError struct {
	Selector string
}

func (e *NoSuchPlayerError) Error() string {
	return "player not found: " + e.Selector
}

// UnsupportedInterfaceError indicates that a player does not implement an
// optional MPRIS interface at all
type UnsupportedInterfaceError struct {
	BusName string
	Iface   string
}

func (e *UnsupportedInterfaceError) Error() string {
	return e.BusName + " does not implement " + e.Iface
}

// UnsupportedMemberError indicates that a player does not implement a
// specific method or property of an interface it otherwise exposes
type UnsupportedMemberError struct {
	BusName string
	Iface   string
	Member  string
}

func (e *UnsupportedMemberError) Error() string {
	return e.Member + " is not supported by " + e.BusName
}

// DecodeError indicates that a reply payload did not match the shape the
// MPRIS spec documents for it
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "cannot decode " + e.What + ": " + e.Err.Error()
	}
	return "cannot decode " + e.What
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidBusNameError indicates that a busName is invalid
type InvalidBusNameError struct {
	BusName string
	Reason  string
}

func (e *InvalidBusNameError) Error() string {
	return "invalid player name: " + e.Reason
}

// ValidationError indicates that a command argument is invalid
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
