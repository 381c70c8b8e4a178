package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
)

// MetadataRecord is the normalized form of the player's Metadata map.
// Recognized keys are coerced to stable types; everything else lands
// untouched in Passthrough. Has tells a key the player never sent apart
// from one sent with a zero value.
type MetadataRecord struct {
	TrackID      string   `json:"trackid,omitempty"`
	Length       int64    `json:"length,omitempty"`
	ArtURL       string   `json:"art_url,omitempty"`
	Title        string   `json:"title,omitempty"`
	Album        string   `json:"album,omitempty"`
	Artists      []string `json:"artists,omitempty"`
	AlbumArtists []string `json:"album_artists,omitempty"`
	URL          string   `json:"url,omitempty"`
	TrackNumber  int      `json:"track_number,omitempty"`

	Passthrough map[string]interface{} `json:"passthrough,omitempty"`

	present map[string]bool
}

// Has reports whether the player actually sent key.
func (m *MetadataRecord) Has(key string) bool {
	return m.present[key]
}

// unwrap peels variant-in-variant nesting, which some players produce for
// a{sv} values.
func unwrap(v dbus.Variant) interface{} {
	val := v.Value()
	for {
		inner, ok := val.(dbus.Variant)
		if !ok {
			return val
		}
		val = inner.Value()
	}
}

// DecodeMetadata normalizes a raw Metadata map. A recognized key carrying a
// type that cannot be coerced is a DecodeError rather than a guess; an
// unrecognized key is preserved verbatim.
func DecodeMetadata(raw map[string]dbus.Variant) (*MetadataRecord, error) {
	rec := &MetadataRecord{present: make(map[string]bool, len(raw))}

	for key, variant := range raw {
		val := unwrap(variant)
		var err error

		switch key {
		case META_TRACKID:
			rec.TrackID, err = coerceObjectPath(val)
		case META_LENGTH:
			rec.Length, err = coerceInt64(val)
		case META_ART_URL:
			rec.ArtURL, err = coerceString(val)
		case META_TITLE:
			rec.Title, err = coerceString(val)
		case META_ALBUM:
			rec.Album, err = coerceString(val)
		case META_ARTIST:
			rec.Artists, err = coerceStringList(val)
		case META_ALBUM_ARTIST:
			rec.AlbumArtists, err = coerceStringList(val)
		case META_URL:
			rec.URL, err = coerceString(val)
		case META_TRACK_NUMBER:
			var n int64
			n, err = coerceInt64(val)
			rec.TrackNumber = int(n)
		default:
			if rec.Passthrough == nil {
				rec.Passthrough = make(map[string]interface{})
			}
			rec.Passthrough[key] = val
		}

		if err != nil {
			return nil, &DecodeError{What: key, Err: err}
		}
		rec.present[key] = true
	}

	return rec, nil
}

// EncodeMetadata rebuilds a raw Metadata map from a record. Only keys the
// record actually carries are emitted, with their canonical wire types, so
// decode and encode round-trip.
func EncodeMetadata(rec *MetadataRecord) map[string]dbus.Variant {
	raw := make(map[string]dbus.Variant)
	if rec == nil {
		return raw
	}

	if rec.Has(META_TRACKID) {
		raw[META_TRACKID] = dbus.MakeVariant(dbus.ObjectPath(rec.TrackID))
	}
	if rec.Has(META_LENGTH) {
		raw[META_LENGTH] = dbus.MakeVariant(rec.Length)
	}
	if rec.Has(META_ART_URL) {
		raw[META_ART_URL] = dbus.MakeVariant(rec.ArtURL)
	}
	if rec.Has(META_TITLE) {
		raw[META_TITLE] = dbus.MakeVariant(rec.Title)
	}
	if rec.Has(META_ALBUM) {
		raw[META_ALBUM] = dbus.MakeVariant(rec.Album)
	}
	if rec.Has(META_ARTIST) {
		raw[META_ARTIST] = dbus.MakeVariant(rec.Artists)
	}
	if rec.Has(META_ALBUM_ARTIST) {
		raw[META_ALBUM_ARTIST] = dbus.MakeVariant(rec.AlbumArtists)
	}
	if rec.Has(META_URL) {
		raw[META_URL] = dbus.MakeVariant(rec.URL)
	}
	if rec.Has(META_TRACK_NUMBER) {
		raw[META_TRACK_NUMBER] = dbus.MakeVariant(int32(rec.TrackNumber))
	}

	for key, val := range rec.Passthrough {
		raw[key] = dbus.MakeVariant(val)
	}

	return raw
}

func decodeMetadataVariant(v dbus.Variant) (*MetadataRecord, error) {
	raw, ok := idbus.ExtractVariantMap(v)
	if !ok {
		return nil, &DecodeError{What: "Metadata", Err: fmt.Errorf("expected map, got %T", v.Value())}
	}
	return DecodeMetadata(raw)
}

func coerceString(val interface{}) (string, error) {
	if s, ok := val.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string, got %T", val)
}

func coerceObjectPath(val interface{}) (string, error) {
	switch v := val.(type) {
	case dbus.ObjectPath:
		return string(v), nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("expected object path, got %T", val)
}

// coerceInt64 accepts the integer widths players actually send for
// mpris:length and friends.
func coerceInt64(val interface{}) (int64, error) {
	switch v := val.(type) {
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", val)
}

// coerceStringList accepts the shapes players send for xesam:artist: a
// proper string array, a bare string, or a loosely typed list.
func coerceStringList(val interface{}) ([]string, error) {
	switch v := val.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	case []dbus.Variant:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item.Value())
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string list, got %T", val)
}

// FormatLength renders a microsecond duration as m:ss, extending the
// fraction only as far as the value carries precision.
func FormatLength(length int64) string {
	us := length % 1000
	ms := (length / 1000) % 1000
	s := length / 1000000
	minutes := s / 60
	s -= minutes * 60

	switch {
	case us != 0:
		return fmt.Sprintf("%d:%02d.%03d%03d", minutes, s, ms, us)
	case ms != 0:
		return fmt.Sprintf("%d:%02d.%03d", minutes, s, ms)
	default:
		return fmt.Sprintf("%d:%02d", minutes, s)
	}
}
