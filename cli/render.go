package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/logger"
	"github.com/b0bbywan/go-mpris-cli/mpris"
)

// parseSeconds converts a decimal seconds argument to microseconds, the
// unit every MPRIS time value uses on the wire.
func parseSeconds(arg string) (int64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number of seconds: %q", arg)
	}
	return int64(math.Round(f * 1e6)), nil
}

// parseOnOff accepts the usual spellings of a boolean argument.
func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not an on/off value: %q", arg)
}

// statusLine renders the one-line status answer. Playing and paused players
// get title, artists and, when the track has a length, position over
// length; anything else is just the playback state.
func statusLine(st *mpris.Status) string {
	if st.Metadata == nil ||
		(st.PlaybackStatus != mpris.StatusPlaying && st.PlaybackStatus != mpris.StatusPaused) {
		return string(st.PlaybackStatus)
	}

	title := st.Metadata.Title
	if title == "" {
		title = st.Metadata.URL
	}

	artist := "[Unknown]"
	if len(st.Metadata.Artists) > 0 {
		artist = strings.Join(st.Metadata.Artists, ", ")
	}

	line := fmt.Sprintf("%s: %q by %s", st.PlaybackStatus, title, artist)
	if st.Metadata.Length > 0 {
		line += fmt.Sprintf(" (%s/%s)",
			mpris.FormatLength(st.Position),
			mpris.FormatLength(st.Metadata.Length))
	}
	return line
}

// printJSON renders v to stdout as indented JSON.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot render result as JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printMetadata prints a decoded metadata record as key = value lines,
// using the wire key names. Only keys the player actually sent appear.
func printMetadata(rec *mpris.MetadataRecord) {
	printKV := func(key string, val interface{}) {
		fmt.Printf("%s\t= %v\n", key, val)
	}

	if rec.Has(mpris.META_TRACKID) {
		printKV(mpris.META_TRACKID, rec.TrackID)
	}
	if rec.Has(mpris.META_TITLE) {
		printKV(mpris.META_TITLE, rec.Title)
	}
	if rec.Has(mpris.META_ALBUM) {
		printKV(mpris.META_ALBUM, rec.Album)
	}
	if rec.Has(mpris.META_ARTIST) {
		printKV(mpris.META_ARTIST, strings.Join(rec.Artists, ", "))
	}
	if rec.Has(mpris.META_ALBUM_ARTIST) {
		printKV(mpris.META_ALBUM_ARTIST, strings.Join(rec.AlbumArtists, ", "))
	}
	if rec.Has(mpris.META_TRACK_NUMBER) {
		printKV(mpris.META_TRACK_NUMBER, rec.TrackNumber)
	}
	if rec.Has(mpris.META_LENGTH) {
		printKV(mpris.META_LENGTH, mpris.FormatLength(rec.Length))
	}
	if rec.Has(mpris.META_URL) {
		printKV(mpris.META_URL, rec.URL)
	}
	if rec.Has(mpris.META_ART_URL) {
		printKV(mpris.META_ART_URL, rec.ArtURL)
	}

	keys := make([]string, 0, len(rec.Passthrough))
	for k := range rec.Passthrough {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printKV(k, rec.Passthrough[k])
	}
}

// dumpPlayer prints the raw view of a player: interface support summary
// plus the untouched property maps. Lookups are best-effort; a player that
// refuses one is only logged.
func dumpPlayer(c *mpris.Client, busName string) {
	fmt.Printf("selected player %s\n", busName)

	if caps, err := c.Probe(busName); err == nil {
		fmt.Printf("  playlists support:\t%s\n", caps.Interface(mpris.MPRIS_PLAYLISTS_IFACE))
		fmt.Printf("  tracklist support:\t%s\n", caps.Interface(mpris.MPRIS_TRACKLIST_IFACE))
	} else {
		logger.Debug("[cli] probe of %s failed: %v", busName, err)
	}

	if props, err := c.RootProperties(busName); err == nil {
		if id := idbus.MapString(props, "Identity"); id != "" {
			fmt.Printf("  identity:\t%s\n", id)
		}
		fmt.Print(spew.Sdump(props))
	} else {
		logger.Debug("[cli] no root properties for %s: %v", busName, err)
	}

	if props, err := c.PlayerProperties(busName); err == nil {
		fmt.Println("player properties:")
		fmt.Print(spew.Sdump(props))
	} else {
		logger.Debug("[cli] no player properties for %s: %v", busName, err)
	}
}
