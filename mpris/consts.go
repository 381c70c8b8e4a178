package mpris

const (
	CACHE_KEY = "players"

	// MPRIS D-Bus constants
	MPRIS_PREFIX          = "org.mpris.MediaPlayer2"
	MPRIS_PATH            = "/org/mpris/MediaPlayer2"
	MPRIS_INTERFACE       = "org.mpris.MediaPlayer2"
	MPRIS_PLAYER_IFACE    = "org.mpris.MediaPlayer2.Player"
	MPRIS_TRACKLIST_IFACE = "org.mpris.MediaPlayer2.TrackList"
	MPRIS_PLAYLISTS_IFACE = "org.mpris.MediaPlayer2.Playlists"
)

// MPRIS_NO_TRACK is the well-known track ID meaning "no current track".
// SetPosition is a no-op for this value, so absolute positioning falls back
// to a relative Seek.
const MPRIS_NO_TRACK = "/org/mpris/MediaPlayer2/TrackList/NoTrack"

// Metadata keys defined by the MPRIS2 metadata spec.
const (
	META_TRACKID      = "mpris:trackid"
	META_LENGTH       = "mpris:length"
	META_ART_URL      = "mpris:artUrl"
	META_TITLE        = "xesam:title"
	META_ALBUM        = "xesam:album"
	META_ARTIST       = "xesam:artist"
	META_ALBUM_ARTIST = "xesam:albumArtist"
	META_URL          = "xesam:url"
	META_TRACK_NUMBER = "xesam:trackNumber"
)

const (
	StatusPlaying PlaybackStatus = "Playing"
	StatusPaused  PlaybackStatus = "Paused"
	StatusStopped PlaybackStatus = "Stopped"
)

const (
	LoopNone     LoopStatus = "None"
	LoopTrack    LoopStatus = "Track"
	LoopPlaylist LoopStatus = "Playlist"
)
