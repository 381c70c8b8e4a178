// Package mpris implements an MPRIS2 client: player discovery on the
// session bus, capability probing via introspection, and the mapping from
// command names to interface members. It is the library layer behind the
// mpris-cli command and is reusable by other programs.
package mpris

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-mpris-cli/cache"
	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/logger"
)

// New creates a client on top of an open bus transport. cacheTTL bounds how
// long directory and capability lookups stay valid; 0 keeps them for the
// client's lifetime, which suits one-shot invocations.
func New(bus Transport, cacheTTL time.Duration) *Client {
	return &Client{
		bus:   bus,
		caps:  cache.New[*CapabilitySet](cacheTTL),
		names: cache.New[[]string](cacheTTL),
	}
}

// validateBusName validates that a busName is MPRIS-compliant
func validateBusName(busName string) error {
	if busName == "" {
		return &InvalidBusNameError{BusName: busName, Reason: "empty bus name"}
	}
	if !strings.HasPrefix(busName, MPRIS_PREFIX+".") {
		return &InvalidBusNameError{BusName: busName, Reason: "must start with " + MPRIS_PREFIX + "."}
	}
	// Check that it doesn't contain dangerous characters
	if strings.Contains(busName, "..") || strings.Contains(busName, "/") || strings.ContainsAny(busName, "\x00\r\n") {
		return &InvalidBusNameError{BusName: busName, Reason: "contains illegal characters"}
	}
	return nil
}

// gate enforces the capability policy before a call: a known-absent
// interface or member short-circuits without touching the bus, while an
// unknown one is attempted and rejections are translated afterwards.
func gate(caps *CapabilitySet, busName, iface, member string) error {
	switch caps.Interface(iface) {
	case Absent:
		return &UnsupportedInterfaceError{BusName: busName, Iface: iface}
	case Present:
		if caps.Member(iface, member) == Absent {
			return &UnsupportedMemberError{BusName: busName, Iface: iface, Member: member}
		}
	}
	return nil
}

// translate post-processes a failed call. A peer rejection of a member whose
// capability status is unknown becomes UnsupportedMember; everything else
// surfaces unchanged.
func translate(caps *CapabilitySet, busName, iface, member string, err error) error {
	if err == nil {
		return nil
	}

	var me *idbus.MalformedReplyError
	if errors.As(err, &me) {
		return &DecodeError{What: me.What, Err: me.Err}
	}

	var re *idbus.RejectedError
	if !errors.As(err, &re) {
		return err
	}

	switch caps.Member(iface, member) {
	case Unknown:
		logger.Debug("[mpris] %s rejected %s.%s (%s), treating as unsupported", busName, iface, member, re.Name)
		return &UnsupportedMemberError{BusName: busName, Iface: iface, Member: member}
	case Present:
		if re.IsUnknownMember() {
			logger.Warn("[mpris] %s advertises %s.%s but rejected it as unknown", busName, iface, member)
		}
	}
	return err
}

// callMethod invokes one gated method call on a player, discarding the
// reply body
func (c *Client) callMethod(busName string, b binding, args ...interface{}) error {
	_, err := c.callMethodReply(busName, b, args...)
	return err
}

// callMethodReply invokes one gated method call and returns the raw reply
// body for commands that decode it
func (c *Client) callMethodReply(busName string, b binding, args ...interface{}) ([]interface{}, error) {
	caps, err := c.Probe(busName)
	if err != nil {
		return nil, err
	}
	if err := gate(caps, busName, b.iface, b.member); err != nil {
		return nil, err
	}

	logger.Debug("[mpris] calling %s.%s on %s", b.iface, b.member, busName)
	body, err := c.bus.Call(busName, MPRIS_PATH, b.iface, b.member, args...)
	if err != nil {
		return nil, translate(caps, busName, b.iface, b.member, err)
	}
	return body, nil
}

// readProp reads one gated property from a player
func (c *Client) readProp(busName string, b binding) (dbus.Variant, error) {
	caps, err := c.Probe(busName)
	if err != nil {
		return dbus.Variant{}, err
	}
	if err := gate(caps, busName, b.iface, b.member); err != nil {
		return dbus.Variant{}, err
	}

	v, err := c.bus.GetProperty(busName, MPRIS_PATH, b.iface, b.member)
	if err != nil {
		return dbus.Variant{}, translate(caps, busName, b.iface, b.member, err)
	}
	return v, nil
}

// writeProp writes one gated property on a player
func (c *Client) writeProp(busName string, b binding, value interface{}) error {
	caps, err := c.Probe(busName)
	if err != nil {
		return err
	}
	if err := gate(caps, busName, b.iface, b.member); err != nil {
		return err
	}

	logger.Debug("[mpris] setting %s.%s on %s", b.iface, b.member, busName)
	err = c.bus.SetProperty(busName, MPRIS_PATH, b.iface, b.member, value)
	return translate(caps, busName, b.iface, b.member, err)
}

// Typed property readers. A reply that does not carry the documented type is
// a decode failure, not a zero value.

func (c *Client) readStringProp(busName string, b binding) (string, error) {
	v, err := c.readProp(busName, b)
	if err != nil {
		return "", err
	}
	s, ok := idbus.ExtractString(v)
	if !ok {
		return "", &DecodeError{What: b.member, Err: fmt.Errorf("expected string, got %T", v.Value())}
	}
	return s, nil
}

func (c *Client) readBoolProp(busName string, b binding) (bool, error) {
	v, err := c.readProp(busName, b)
	if err != nil {
		return false, err
	}
	val, ok := idbus.ExtractBool(v)
	if !ok {
		return false, &DecodeError{What: b.member, Err: fmt.Errorf("expected bool, got %T", v.Value())}
	}
	return val, nil
}

func (c *Client) readFloat64Prop(busName string, b binding) (float64, error) {
	v, err := c.readProp(busName, b)
	if err != nil {
		return 0, err
	}
	val, ok := idbus.ExtractFloat64(v)
	if !ok {
		return 0, &DecodeError{What: b.member, Err: fmt.Errorf("expected float64, got %T", v.Value())}
	}
	return val, nil
}

func (c *Client) readInt64Prop(busName string, b binding) (int64, error) {
	v, err := c.readProp(busName, b)
	if err != nil {
		return 0, err
	}
	val, ok := idbus.ExtractInt64(v)
	if !ok {
		return 0, &DecodeError{What: b.member, Err: fmt.Errorf("expected int64, got %T", v.Value())}
	}
	return val, nil
}
