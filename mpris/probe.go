package mpris

import (
	"errors"

	"github.com/godbus/dbus/v5/introspect"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/logger"
)

// Presence is the tri-state answer introspection gives about an interface
// or member. Unknown means the probe could not confirm either way and the
// call must be attempted.
type Presence int

const (
	Unknown Presence = iota
	Present
	Absent
)

func (p Presence) String() string {
	switch p {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// mprisInterfaces is the closed set of interfaces the probe draws absence
// conclusions about. Anything else a player lists is recorded but never
// assumed missing.
var mprisInterfaces = []string{
	MPRIS_INTERFACE,
	MPRIS_PLAYER_IFACE,
	MPRIS_TRACKLIST_IFACE,
	MPRIS_PLAYLISTS_IFACE,
}

// CapabilitySet records which interfaces and members one player exposes.
// Read-only after construction.
type CapabilitySet struct {
	ifaces  map[string]Presence
	members map[string]Presence

	// detailed marks interfaces whose introspection listed members, so an
	// unlisted member of such an interface is known absent rather than
	// merely unconfirmed.
	detailed map[string]bool
}

func newCapabilitySet() *CapabilitySet {
	return &CapabilitySet{
		ifaces:   make(map[string]Presence),
		members:  make(map[string]Presence),
		detailed: make(map[string]bool),
	}
}

func memberKey(iface, member string) string {
	return iface + "." + member
}

// Interface reports whether the player exposes iface.
func (s *CapabilitySet) Interface(iface string) Presence {
	if p, ok := s.ifaces[iface]; ok {
		return p
	}
	return Unknown
}

// Member reports whether the player exposes iface.member. Members of an
// absent interface are absent themselves.
func (s *CapabilitySet) Member(iface, member string) Presence {
	switch s.Interface(iface) {
	case Absent:
		return Absent
	case Present:
		if p, ok := s.members[memberKey(iface, member)]; ok {
			return p
		}
		if s.detailed[iface] {
			return Absent
		}
	}
	return Unknown
}

// buildCapabilitySet folds an introspection document into a capability set.
// An empty document carries no information and yields all-unknown.
func buildCapabilitySet(node *introspect.Node) *CapabilitySet {
	caps := newCapabilitySet()
	if node == nil || len(node.Interfaces) == 0 {
		return caps
	}

	seen := make(map[string]bool, len(node.Interfaces))
	for _, iface := range node.Interfaces {
		seen[iface.Name] = true
		caps.ifaces[iface.Name] = Present

		listed := 0
		for _, m := range iface.Methods {
			caps.members[memberKey(iface.Name, m.Name)] = Present
			listed++
		}
		for _, p := range iface.Properties {
			caps.members[memberKey(iface.Name, p.Name)] = Present
			listed++
		}
		if listed > 0 {
			caps.detailed[iface.Name] = true
		}
	}

	for _, known := range mprisInterfaces {
		if !seen[known] {
			caps.ifaces[known] = Absent
		}
	}

	return caps
}

// Probe determines which MPRIS interfaces and members busName exposes,
// caching the result per player. Players that refuse introspection or
// return an unusable document yield an all-unknown set; commands against
// them are attempted and peer rejections translated afterwards.
func (c *Client) Probe(busName string) (*CapabilitySet, error) {
	if err := validateBusName(busName); err != nil {
		return nil, err
	}

	if caps, ok := c.caps.Get(busName); ok {
		return caps, nil
	}

	caps, err := c.probe(busName)
	if err != nil {
		return nil, err
	}
	c.caps.Set(busName, caps)
	return caps, nil
}

func (c *Client) probe(busName string) (*CapabilitySet, error) {
	node, err := c.bus.Introspect(busName, MPRIS_PATH)
	if err != nil {
		var re *idbus.RejectedError
		var me *idbus.MalformedReplyError
		if errors.As(err, &re) || errors.As(err, &me) {
			logger.Debug("[mpris] %s does not introspect cleanly: %v", busName, err)
			return newCapabilitySet(), nil
		}
		// Unreachable or timed out peers are reported, not guessed around.
		return nil, err
	}

	caps := buildCapabilitySet(node)
	logger.Debug("[mpris] probed %s: player=%s tracklist=%s playlists=%s",
		busName,
		caps.Interface(MPRIS_PLAYER_IFACE),
		caps.Interface(MPRIS_TRACKLIST_IFACE),
		caps.Interface(MPRIS_PLAYLISTS_IFACE))
	return caps, nil
}
