package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/logger"
)

// bindings statically ties each command to its interface member. The table
// is the single source of truth for what the client can do; every operation
// below goes through exactly one entry.
var bindings = map[string]binding{
	"play":         {MPRIS_PLAYER_IFACE, "Play", KindMethod},
	"pause":        {MPRIS_PLAYER_IFACE, "Pause", KindMethod},
	"play-pause":   {MPRIS_PLAYER_IFACE, "PlayPause", KindMethod},
	"stop":         {MPRIS_PLAYER_IFACE, "Stop", KindMethod},
	"next":         {MPRIS_PLAYER_IFACE, "Next", KindMethod},
	"previous":     {MPRIS_PLAYER_IFACE, "Previous", KindMethod},
	"seek":         {MPRIS_PLAYER_IFACE, "Seek", KindMethod},
	"set-position": {MPRIS_PLAYER_IFACE, "SetPosition", KindMethod},
	"open-uri":     {MPRIS_PLAYER_IFACE, "OpenUri", KindMethod},
	"raise":        {MPRIS_INTERFACE, "Raise", KindMethod},
	"quit":         {MPRIS_INTERFACE, "Quit", KindMethod},

	"playback-status": {MPRIS_PLAYER_IFACE, "PlaybackStatus", KindPropRead},
	"metadata":        {MPRIS_PLAYER_IFACE, "Metadata", KindPropRead},
	"position":        {MPRIS_PLAYER_IFACE, "Position", KindPropRead},
	"volume":          {MPRIS_PLAYER_IFACE, "Volume", KindPropRead},
	"volume-set":      {MPRIS_PLAYER_IFACE, "Volume", KindPropWrite},
	"shuffle":         {MPRIS_PLAYER_IFACE, "Shuffle", KindPropRead},
	"shuffle-set":     {MPRIS_PLAYER_IFACE, "Shuffle", KindPropWrite},
	"loop":            {MPRIS_PLAYER_IFACE, "LoopStatus", KindPropRead},
	"loop-set":        {MPRIS_PLAYER_IFACE, "LoopStatus", KindPropWrite},
	"rate":            {MPRIS_PLAYER_IFACE, "Rate", KindPropRead},
	"rate-set":        {MPRIS_PLAYER_IFACE, "Rate", KindPropWrite},
	"identity":        {MPRIS_INTERFACE, "Identity", KindPropRead},

	"list-tracks":     {MPRIS_TRACKLIST_IFACE, "Tracks", KindPropRead},
	"tracks-metadata": {MPRIS_TRACKLIST_IFACE, "GetTracksMetadata", KindMethod},
	"add-track":       {MPRIS_TRACKLIST_IFACE, "AddTrack", KindMethod},
	"remove-track":    {MPRIS_TRACKLIST_IFACE, "RemoveTrack", KindMethod},
	"go-to":           {MPRIS_TRACKLIST_IFACE, "GoTo", KindMethod},

	"list-playlists":    {MPRIS_PLAYLISTS_IFACE, "GetPlaylists", KindMethod},
	"activate-playlist": {MPRIS_PLAYLISTS_IFACE, "ActivatePlaylist", KindMethod},
	"playlist-count":    {MPRIS_PLAYLISTS_IFACE, "PlaylistCount", KindPropRead},
}

func mustBind(name string) binding {
	b, ok := bindings[name]
	if !ok {
		panic("mpris: no binding for command " + name)
	}
	return b
}

// Play starts playback
func (c *Client) Play(busName string) error {
	return c.callMethod(busName, mustBind("play"))
}

// Pause pauses playback
func (c *Client) Pause(busName string) error {
	return c.callMethod(busName, mustBind("pause"))
}

// PlayPause toggles between playing and paused
func (c *Client) PlayPause(busName string) error {
	return c.callMethod(busName, mustBind("play-pause"))
}

// Stop stops playback
func (c *Client) Stop(busName string) error {
	return c.callMethod(busName, mustBind("stop"))
}

// Next skips to the next track
func (c *Client) Next(busName string) error {
	return c.callMethod(busName, mustBind("next"))
}

// Previous skips to the previous track
func (c *Client) Previous(busName string) error {
	return c.callMethod(busName, mustBind("previous"))
}

// Seek moves the playback position by offset microseconds, negative values
// seeking backwards
func (c *Client) Seek(busName string, offset int64) error {
	return c.callMethod(busName, mustBind("seek"), offset)
}

// SetPosition jumps to position microseconds within the track identified by
// trackID
func (c *Client) SetPosition(busName, trackID string, position int64) error {
	if trackID == "" {
		return &ValidationError{Field: "track_id", Message: "cannot be empty"}
	}
	return c.callMethod(busName, mustBind("set-position"), dbus.ObjectPath(trackID), position)
}

// OpenUri asks the player to load and play uri
func (c *Client) OpenUri(busName, uri string) error {
	if uri == "" {
		return &ValidationError{Field: "uri", Message: "cannot be empty"}
	}
	return c.callMethod(busName, mustBind("open-uri"), uri)
}

// Raise asks the player to bring its user interface to the front
func (c *Client) Raise(busName string) error {
	return c.callMethod(busName, mustBind("raise"))
}

// Quit asks the player to exit
func (c *Client) Quit(busName string) error {
	return c.callMethod(busName, mustBind("quit"))
}

// PlaybackStatus returns the current playback state
func (c *Client) PlaybackStatus(busName string) (PlaybackStatus, error) {
	s, err := c.readStringProp(busName, mustBind("playback-status"))
	return PlaybackStatus(s), err
}

// Metadata fetches and decodes the current track metadata
func (c *Client) Metadata(busName string) (*MetadataRecord, error) {
	v, err := c.readProp(busName, mustBind("metadata"))
	if err != nil {
		return nil, err
	}
	return decodeMetadataVariant(v)
}

// Position returns the playback position in microseconds
func (c *Client) Position(busName string) (int64, error) {
	return c.readInt64Prop(busName, mustBind("position"))
}

// Volume returns the player volume
func (c *Client) Volume(busName string) (float64, error) {
	return c.readFloat64Prop(busName, mustBind("volume"))
}

// SetVolume sets the player volume. The value is passed through untouched;
// players enforce their own bounds.
func (c *Client) SetVolume(busName string, volume float64) error {
	return c.writeProp(busName, mustBind("volume-set"), volume)
}

// LoopStatus returns the current loop mode
func (c *Client) LoopStatus(busName string) (LoopStatus, error) {
	s, err := c.readStringProp(busName, mustBind("loop"))
	return LoopStatus(s), err
}

// SetLoopStatus sets the loop mode
func (c *Client) SetLoopStatus(busName string, status LoopStatus) error {
	switch status {
	case LoopNone, LoopTrack, LoopPlaylist:
		// valid
	default:
		return &ValidationError{Field: "loop", Message: "must be None, Track, or Playlist"}
	}
	return c.writeProp(busName, mustBind("loop-set"), string(status))
}

// Shuffle returns whether shuffle mode is on
func (c *Client) Shuffle(busName string) (bool, error) {
	return c.readBoolProp(busName, mustBind("shuffle"))
}

// SetShuffle turns shuffle mode on or off
func (c *Client) SetShuffle(busName string, shuffle bool) error {
	return c.writeProp(busName, mustBind("shuffle-set"), shuffle)
}

// Rate returns the playback rate
func (c *Client) Rate(busName string) (float64, error) {
	return c.readFloat64Prop(busName, mustBind("rate"))
}

// SetRate sets the playback rate. Like volume, the value is the player's to
// accept or refuse.
func (c *Client) SetRate(busName string, rate float64) error {
	return c.writeProp(busName, mustBind("rate-set"), rate)
}

// Identity returns the player's human-readable name
func (c *Client) Identity(busName string) (string, error) {
	return c.readStringProp(busName, mustBind("identity"))
}

// Status gathers the composite playing-state answer. Metadata and position
// are only consulted while playing or paused; the player stays the
// authority on both.
func (c *Client) Status(busName string) (*Status, error) {
	status, err := c.PlaybackStatus(busName)
	if err != nil {
		return nil, err
	}

	st := &Status{PlaybackStatus: status}
	if status != StatusPlaying && status != StatusPaused {
		return st, nil
	}

	meta, err := c.Metadata(busName)
	if err != nil {
		return nil, err
	}
	st.Metadata = meta

	pos, err := c.Position(busName)
	if err != nil {
		return nil, err
	}
	st.Position = pos

	return st, nil
}

// SeekTo jumps to an absolute position in microseconds, preferring
// SetPosition with the current track ID and falling back to a relative Seek
// when the player reports no usable track.
func (c *Client) SeekTo(busName string, target int64) error {
	meta, err := c.Metadata(busName)
	if err != nil {
		return err
	}

	if meta.Has(META_TRACKID) && meta.TrackID != MPRIS_NO_TRACK {
		return c.SetPosition(busName, meta.TrackID, target)
	}

	pos, err := c.Position(busName)
	if err != nil {
		return err
	}
	return c.Seek(busName, target-pos)
}

// PlayerProperties returns the raw Player interface properties in one call
func (c *Client) PlayerProperties(busName string) (map[string]dbus.Variant, error) {
	return c.allProperties(busName, MPRIS_PLAYER_IFACE)
}

// RootProperties returns the raw root interface properties in one call
func (c *Client) RootProperties(busName string) (map[string]dbus.Variant, error) {
	return c.allProperties(busName, MPRIS_INTERFACE)
}

func (c *Client) allProperties(busName, iface string) (map[string]dbus.Variant, error) {
	caps, err := c.Probe(busName)
	if err != nil {
		return nil, err
	}
	if caps.Interface(iface) == Absent {
		return nil, &UnsupportedInterfaceError{BusName: busName, Iface: iface}
	}

	props, err := c.bus.GetAllProperties(busName, MPRIS_PATH, iface)
	if err != nil {
		return nil, translate(caps, busName, iface, "GetAll", err)
	}
	logger.Debug("[mpris] %s %s properties: %v", busName, iface, idbus.Keys(props))
	return props, nil
}

// Capabilities reads the player's Can* properties in a single call
func (c *Client) Capabilities(busName string) (*Capabilities, error) {
	props, err := c.PlayerProperties(busName)
	if err != nil {
		return nil, err
	}

	return &Capabilities{
		CanPlay:       idbus.MapBool(props, "CanPlay"),
		CanPause:      idbus.MapBool(props, "CanPause"),
		CanGoNext:     idbus.MapBool(props, "CanGoNext"),
		CanGoPrevious: idbus.MapBool(props, "CanGoPrevious"),
		CanSeek:       idbus.MapBool(props, "CanSeek"),
		CanControl:    idbus.MapBool(props, "CanControl"),
	}, nil
}

// Tracks returns the ordered track IDs of the player's track list
func (c *Client) Tracks(busName string) ([]string, error) {
	v, err := c.readProp(busName, mustBind("list-tracks"))
	if err != nil {
		return nil, err
	}

	switch paths := v.Value().(type) {
	case []dbus.ObjectPath:
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			out = append(out, string(p))
		}
		return out, nil
	case []string:
		return append([]string(nil), paths...), nil
	}
	return nil, &DecodeError{What: "Tracks", Err: fmt.Errorf("expected object path list, got %T", v.Value())}
}

// TracksMetadata resolves metadata for the given track IDs
func (c *Client) TracksMetadata(busName string, trackIDs []string) ([]*MetadataRecord, error) {
	ids := make([]dbus.ObjectPath, 0, len(trackIDs))
	for _, id := range trackIDs {
		ids = append(ids, dbus.ObjectPath(id))
	}

	body, err := c.callMethodReply(busName, mustBind("tracks-metadata"), ids)
	if err != nil {
		return nil, err
	}
	if len(body) != 1 {
		return nil, &DecodeError{What: "GetTracksMetadata", Err: fmt.Errorf("expected 1 return value, got %d", len(body))}
	}

	rows, ok := body[0].([]map[string]dbus.Variant)
	if !ok {
		return nil, &DecodeError{What: "GetTracksMetadata", Err: fmt.Errorf("expected metadata list, got %T", body[0])}
	}

	records := make([]*MetadataRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := DecodeMetadata(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// AddTrack appends uri to the player's track list. afterTrack may be empty
// to insert at the start; setAsCurrent makes the new track the current one.
func (c *Client) AddTrack(busName, uri, afterTrack string, setAsCurrent bool) error {
	if uri == "" {
		return &ValidationError{Field: "uri", Message: "cannot be empty"}
	}
	after := dbus.ObjectPath(MPRIS_NO_TRACK)
	if afterTrack != "" {
		after = dbus.ObjectPath(afterTrack)
	}
	return c.callMethod(busName, mustBind("add-track"), uri, after, setAsCurrent)
}

// RemoveTrack removes a track from the player's track list
func (c *Client) RemoveTrack(busName, trackID string) error {
	if trackID == "" {
		return &ValidationError{Field: "track_id", Message: "cannot be empty"}
	}
	return c.callMethod(busName, mustBind("remove-track"), dbus.ObjectPath(trackID))
}

// GoToTrack skips to an existing track in the player's track list
func (c *Client) GoToTrack(busName, trackID string) error {
	if trackID == "" {
		return &ValidationError{Field: "track_id", Message: "cannot be empty"}
	}
	return c.callMethod(busName, mustBind("go-to"), dbus.ObjectPath(trackID))
}

// Playlists fetches up to max playlists in alphabetical order
func (c *Client) Playlists(busName string, max uint32) ([]Playlist, error) {
	return c.PlaylistsRange(busName, 0, max, "Alphabetical", false)
}

// PlaylistsRange fetches a window of the player's playlists. Order is one of
// the orderings the player advertises (Alphabetical is mandatory per MPRIS2).
func (c *Client) PlaylistsRange(busName string, index, max uint32, order string, reverse bool) ([]Playlist, error) {
	body, err := c.callMethodReply(busName, mustBind("list-playlists"), index, max, order, reverse)
	if err != nil {
		return nil, err
	}
	if len(body) != 1 {
		return nil, &DecodeError{What: "GetPlaylists", Err: fmt.Errorf("expected 1 return value, got %d", len(body))}
	}

	rows, ok := body[0].([][]interface{})
	if !ok {
		return nil, &DecodeError{What: "GetPlaylists", Err: fmt.Errorf("expected playlist list, got %T", body[0])}
	}

	playlists := make([]Playlist, 0, len(rows))
	for _, row := range rows {
		if len(row) != 3 {
			return nil, &DecodeError{What: "GetPlaylists", Err: fmt.Errorf("expected 3 fields per playlist, got %d", len(row))}
		}
		id, err := coerceObjectPath(row[0])
		if err != nil {
			return nil, &DecodeError{What: "GetPlaylists", Err: err}
		}
		name, err := coerceString(row[1])
		if err != nil {
			return nil, &DecodeError{What: "GetPlaylists", Err: err}
		}
		icon, err := coerceString(row[2])
		if err != nil {
			return nil, &DecodeError{What: "GetPlaylists", Err: err}
		}
		playlists = append(playlists, Playlist{ID: id, Name: name, Icon: icon})
	}
	return playlists, nil
}

// ActivatePlaylist starts playing the given playlist
func (c *Client) ActivatePlaylist(busName, playlistID string) error {
	if playlistID == "" {
		return &ValidationError{Field: "playlist_id", Message: "cannot be empty"}
	}
	return c.callMethod(busName, mustBind("activate-playlist"), dbus.ObjectPath(playlistID))
}

// PlaylistCount returns how many playlists the player has
func (c *Client) PlaylistCount(busName string) (uint32, error) {
	v, err := c.readProp(busName, mustBind("playlist-count"))
	if err != nil {
		return 0, err
	}
	n, err := coerceInt64(v.Value())
	if err != nil {
		return 0, &DecodeError{What: "PlaylistCount", Err: err}
	}
	return uint32(n), nil
}
