package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/b0bbywan/go-mpris-cli/cache"
)

// PlaybackStatus represents the current playback state
type PlaybackStatus string

// LoopStatus represents the current loop/repeat state
type LoopStatus string

// Transport is the bus access the client needs: method calls, property
// access and introspection against a named peer. *internal/dbus.Bus
// implements it; tests substitute stubs.
type Transport interface {
	ListNames() ([]string, error)
	Call(dest, path, iface, member string, args ...interface{}) ([]interface{}, error)
	GetProperty(dest, path, iface, name string) (dbus.Variant, error)
	SetProperty(dest, path, iface, name string, value interface{}) error
	GetAllProperties(dest, path, iface string) (map[string]dbus.Variant, error)
	Introspect(dest, path string) (*introspect.Node, error)
}

// Client talks MPRIS to players over a Transport. It holds no player state
// beyond short-lived caches; the players themselves stay authoritative.
type Client struct {
	bus Transport

	// capability sets per bus name
	caps *cache.Cache[*CapabilitySet]

	// directory of MPRIS bus names
	names *cache.Cache[[]string]
}

// Player identifies one MPRIS media player on the bus
type Player struct {
	BusName  string `json:"bus_name"`
	Name     string `json:"name"`
	Identity string `json:"identity,omitempty"`
}

// Capabilities represents the control surface a player advertises via its
// Can* properties
type Capabilities struct {
	CanPlay       bool `json:"can_play" dbus:"CanPlay"`
	CanPause      bool `json:"can_pause" dbus:"CanPause"`
	CanGoNext     bool `json:"can_go_next" dbus:"CanGoNext"`
	CanGoPrevious bool `json:"can_go_previous" dbus:"CanGoPrevious"`
	CanSeek       bool `json:"can_seek" dbus:"CanSeek"`
	CanControl    bool `json:"can_control" dbus:"CanControl"`
}

// Status is the composite answer to "what is the player doing right now".
// Metadata and Position are only populated while playing or paused.
type Status struct {
	PlaybackStatus PlaybackStatus  `json:"playback_status"`
	Metadata       *MetadataRecord `json:"metadata,omitempty"`
	Position       int64           `json:"position,omitempty"`
}

// Playlist is one entry of the optional Playlists interface
type Playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// MemberKind distinguishes how a command reaches its interface member.
type MemberKind int

const (
	KindMethod MemberKind = iota
	KindPropRead
	KindPropWrite
)

// binding statically ties a command to one interface member.
type binding struct {
	iface  string
	member string
	kind   MemberKind
}
