// Package dbus wraps the session-bus plumbing shared by the rest of the
// module: method calls, property access and introspection against a named
// peer, with a per-call deadline and a small error taxonomy. It carries no
// MPRIS knowledge; callers supply destination names, paths and interfaces.
package dbus

import (
	"context"
	"encoding/xml"
	"errors"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// DefaultTimeout is the deadline used for bus calls when the caller does not
// configure one.
var DefaultTimeout = 5 * time.Second

// Bus is a session-bus handle scoped to one process invocation.
type Bus struct {
	conn    *dbus.Conn
	ctx     context.Context
	timeout time.Duration
}

// Connect opens a connection to the session bus. The context bounds the
// connection lifetime; timeout bounds each individual call.
func Connect(ctx context.Context, timeout time.Duration) (*Bus, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}
	return &Bus{conn: conn, ctx: ctx, timeout: timeout}, nil
}

// Close releases the bus connection.
func (b *Bus) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}

func (b *Bus) object(dest, path string) dbus.BusObject {
	return b.conn.Object(dest, dbus.ObjectPath(path))
}

// call performs one synchronous method call. A failure is classified into
// the transport taxonomy and returned as-is; there are no retries.
func (b *Bus) call(obj dbus.BusObject, dest, method string, args ...interface{}) (*dbus.Call, error) {
	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()

	call := obj.CallWithContext(ctx, method, 0, args...)
	if call.Err != nil {
		return nil, classify(dest, method, call.Err)
	}
	return call, nil
}

// classify maps a raw godbus error onto the transport error taxonomy.
func classify(dest, method string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TimeoutError{Method: method}
	}

	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		switch dbusErr.Name {
		case ERR_SERVICE_UNKNOWN, ERR_NAME_HAS_NO_OWNER, ERR_DISCONNECTED, ERR_NO_SERVER:
			return &UnreachableError{Dest: dest, Err: err}
		case ERR_NO_REPLY, ERR_TIMEOUT, ERR_TIMED_OUT:
			return &TimeoutError{Method: method}
		default:
			return &RejectedError{Method: method, Name: dbusErr.Name, Err: err}
		}
	}

	// Anything that is not a peer reply means we never reached the peer.
	return &UnreachableError{Dest: dest, Err: err}
}

// Call invokes iface.member on the object at dest/path and returns the raw
// reply body.
func (b *Bus) Call(dest, path, iface, member string, args ...interface{}) ([]interface{}, error) {
	call, err := b.call(b.object(dest, path), dest, iface+"."+member, args...)
	if err != nil {
		return nil, err
	}
	return call.Body, nil
}

// GetProperty retrieves a single property from the object at dest/path.
func (b *Bus) GetProperty(dest, path, iface, name string) (dbus.Variant, error) {
	call, err := b.call(b.object(dest, path), dest, PROP_GET, iface, name)
	if err != nil {
		return dbus.Variant{}, err
	}
	var v dbus.Variant
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, &MalformedReplyError{What: iface + "." + name, Err: err}
	}
	return v, nil
}

// SetProperty sets a single property on the object at dest/path.
func (b *Bus) SetProperty(dest, path, iface, name string, value interface{}) error {
	_, err := b.call(b.object(dest, path), dest, PROP_SET, iface, name, dbus.MakeVariant(value))
	return err
}

// GetAllProperties retrieves every property of one interface in a single call.
func (b *Bus) GetAllProperties(dest, path, iface string) (map[string]dbus.Variant, error) {
	call, err := b.call(b.object(dest, path), dest, PROP_GET_ALL, iface)
	if err != nil {
		return nil, err
	}
	var props map[string]dbus.Variant
	if err := call.Store(&props); err != nil {
		return nil, &MalformedReplyError{What: "GetAll " + iface, Err: err}
	}
	return props, nil
}

// Introspect fetches and parses the introspection document of the object at
// dest/path.
func (b *Bus) Introspect(dest, path string) (*introspect.Node, error) {
	call, err := b.call(b.object(dest, path), dest, INTROSPECT_CALL)
	if err != nil {
		return nil, err
	}
	var data string
	if err := call.Store(&data); err != nil {
		return nil, &MalformedReplyError{What: "Introspect " + dest, Err: err}
	}
	var node introspect.Node
	if err := xml.Unmarshal([]byte(data), &node); err != nil {
		return nil, &MalformedReplyError{What: "introspection data from " + dest, Err: err}
	}
	return &node, nil
}

// ListNames retrieves the list of all names currently owned on the bus, in
// bus-provided order.
func (b *Bus) ListNames() ([]string, error) {
	call, err := b.call(b.conn.BusObject(), DBUS_INTERFACE, BUS_LIST_NAMES)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := call.Store(&names); err != nil {
		return nil, &MalformedReplyError{What: "ListNames", Err: err}
	}
	return names, nil
}

// --- Variant extraction helpers ---

// ExtractString extracts a string from a dbus.Variant.
func ExtractString(v dbus.Variant) (string, bool) {
	val, ok := v.Value().(string)
	return val, ok
}

// ExtractBool extracts a bool from a dbus.Variant.
func ExtractBool(v dbus.Variant) (bool, bool) {
	val, ok := v.Value().(bool)
	return val, ok
}

// ExtractInt64 extracts an int64 from a dbus.Variant.
func ExtractInt64(v dbus.Variant) (int64, bool) {
	val, ok := v.Value().(int64)
	return val, ok
}

// ExtractFloat64 extracts a float64 from a dbus.Variant.
func ExtractFloat64(v dbus.Variant) (float64, bool) {
	val, ok := v.Value().(float64)
	return val, ok
}

// ExtractVariantMap extracts a map[string]dbus.Variant from a dbus.Variant.
func ExtractVariantMap(v dbus.Variant) (map[string]dbus.Variant, bool) {
	val, ok := v.Value().(map[string]dbus.Variant)
	return val, ok
}

// --- Map helpers (props map[string]dbus.Variant) ---

// MapString extracts a string from a props map by key.
func MapString(props map[string]dbus.Variant, key string) string {
	if v, ok := props[key]; ok {
		s, _ := ExtractString(v)
		return s
	}
	return ""
}

// MapBool extracts a bool from a props map by key.
func MapBool(props map[string]dbus.Variant, key string) bool {
	if v, ok := props[key]; ok {
		b, _ := ExtractBool(v)
		return b
	}
	return false
}

// Keys returns the keys of a props map (useful for debug logging).
func Keys(props map[string]dbus.Variant) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	return keys
}
