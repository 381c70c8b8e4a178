package mpris

import (
	"errors"
	"reflect"
	"testing"

	"github.com/godbus/dbus/v5"
)

func sampleRaw() map[string]dbus.Variant {
	return map[string]dbus.Variant{
		META_TRACKID:      dbus.MakeVariant(dbus.ObjectPath("/org/mpd/Tracks/5")),
		META_LENGTH:       dbus.MakeVariant(int64(180000000)),
		META_ART_URL:      dbus.MakeVariant("file:///tmp/cover.png"),
		META_TITLE:        dbus.MakeVariant("Paranoid Android"),
		META_ALBUM:        dbus.MakeVariant("OK Computer"),
		META_ARTIST:       dbus.MakeVariant([]string{"Radiohead"}),
		META_ALBUM_ARTIST: dbus.MakeVariant([]string{"Radiohead"}),
		META_URL:          dbus.MakeVariant("file:///music/02.flac"),
		META_TRACK_NUMBER: dbus.MakeVariant(int32(2)),
		"x-custom:foo":    dbus.MakeVariant("bar"),
	}
}

func TestDecodeMetadata(t *testing.T) {
	rec, err := DecodeMetadata(sampleRaw())
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}

	if rec.TrackID != "/org/mpd/Tracks/5" {
		t.Errorf("TrackID = %q", rec.TrackID)
	}
	if rec.Length != 180000000 {
		t.Errorf("Length = %d, expected 180000000", rec.Length)
	}
	// mpris:length is microseconds; 180000000 is exactly three minutes.
	if rec.Length/1000000 != 180 {
		t.Errorf("Length in seconds = %d, expected 180", rec.Length/1000000)
	}
	if rec.Title != "Paranoid Android" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Album != "OK Computer" {
		t.Errorf("Album = %q", rec.Album)
	}
	if !reflect.DeepEqual(rec.Artists, []string{"Radiohead"}) {
		t.Errorf("Artists = %v", rec.Artists)
	}
	if rec.URL != "file:///music/02.flac" {
		t.Errorf("URL = %q", rec.URL)
	}
	if rec.TrackNumber != 2 {
		t.Errorf("TrackNumber = %d, expected 2", rec.TrackNumber)
	}
	if rec.Passthrough["x-custom:foo"] != "bar" {
		t.Errorf("Passthrough[x-custom:foo] = %v, expected bar", rec.Passthrough["x-custom:foo"])
	}
	for _, key := range []string{META_TRACKID, META_LENGTH, META_TITLE, "x-custom:foo"} {
		if !rec.Has(key) {
			t.Errorf("Has(%q) = false, expected true", key)
		}
	}
}

func TestDecodeMetadataIdempotent(t *testing.T) {
	raw := sampleRaw()

	first, err := DecodeMetadata(raw)
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	second, err := DecodeMetadata(raw)
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decoding the same map twice diverged:\n%+v\n%+v", first, second)
	}

	// Re-encoding a decoded record and decoding again must not drift either.
	again, err := DecodeMetadata(EncodeMetadata(first))
	if err != nil {
		t.Fatalf("decode of re-encoded map failed: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Errorf("decode/encode/decode drifted:\n%+v\n%+v", first, again)
	}
}

func TestDecodeMetadataPassthrough(t *testing.T) {
	rec, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE:     dbus.MakeVariant("Song"),
		"x-custom:foo": dbus.MakeVariant("bar"),
		"x-custom:n":   dbus.MakeVariant(int32(7)),
	})
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}

	if got := rec.Passthrough["x-custom:foo"]; got != "bar" {
		t.Errorf("Passthrough[x-custom:foo] = %v, expected bar", got)
	}
	if got := rec.Passthrough["x-custom:n"]; got != int32(7) {
		t.Errorf("Passthrough[x-custom:n] = %v, expected int32 7", got)
	}

	raw := EncodeMetadata(rec)
	if got := raw["x-custom:foo"].Value(); got != "bar" {
		t.Errorf("re-encoded passthrough = %v, expected bar", got)
	}
}

func TestDecodeMetadataAbsentKeys(t *testing.T) {
	// A key the player never sent is absent, which is not the same thing as
	// a key sent with an empty value.
	rec, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE: dbus.MakeVariant("Song"),
	})
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}
	if rec.Has(META_ALBUM) {
		t.Error("Has(album) = true for a key never sent")
	}
	if rec.Album != "" {
		t.Errorf("Album = %q, expected empty", rec.Album)
	}

	sent, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE: dbus.MakeVariant("Song"),
		META_ALBUM: dbus.MakeVariant(""),
	})
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}
	if !sent.Has(META_ALBUM) {
		t.Error("Has(album) = false for a key sent empty")
	}
	if sent.Album != "" {
		t.Errorf("Album = %q, expected empty", sent.Album)
	}
}

func TestDecodeMetadataNestedVariant(t *testing.T) {
	rec, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE: dbus.MakeVariant(dbus.MakeVariant("Wrapped")),
	})
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}
	if rec.Title != "Wrapped" {
		t.Errorf("Title = %q, expected Wrapped", rec.Title)
	}
}

func TestDecodeMetadataArtistShapes(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected []string
	}{
		{"string array", []string{"A", "B"}, []string{"A", "B"}},
		{"bare string", "Solo", []string{"Solo"}},
		{"interface list", []interface{}{"A", "B"}, []string{"A", "B"}},
		{"variant list", []dbus.Variant{dbus.MakeVariant("A")}, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeMetadata(map[string]dbus.Variant{
				META_ARTIST: dbus.MakeVariant(tt.value),
			})
			if err != nil {
				t.Fatalf("DecodeMetadata failed: %v", err)
			}
			if !reflect.DeepEqual(rec.Artists, tt.expected) {
				t.Errorf("Artists = %v, expected %v", rec.Artists, tt.expected)
			}
		})
	}
}

func TestDecodeMetadataLengthWidths(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"int64", int64(5000000)},
		{"uint64", uint64(5000000)},
		{"int32", int32(5000000)},
		{"uint32", uint32(5000000)},
		{"float64", float64(5000000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeMetadata(map[string]dbus.Variant{
				META_LENGTH: dbus.MakeVariant(tt.value),
			})
			if err != nil {
				t.Fatalf("DecodeMetadata failed: %v", err)
			}
			if rec.Length != 5000000 {
				t.Errorf("Length = %d, expected 5000000", rec.Length)
			}
		})
	}
}

func TestDecodeMetadataBadType(t *testing.T) {
	_, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE: dbus.MakeVariant(int32(42)),
	})
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, expected DecodeError", err)
	}
	if de.What != META_TITLE {
		t.Errorf("DecodeError.What = %q, expected %q", de.What, META_TITLE)
	}
}

func TestEncodeMetadataCanonicalTypes(t *testing.T) {
	rec, err := DecodeMetadata(sampleRaw())
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}
	raw := EncodeMetadata(rec)

	if _, ok := raw[META_TRACKID].Value().(dbus.ObjectPath); !ok {
		t.Errorf("trackid encoded as %T, expected ObjectPath", raw[META_TRACKID].Value())
	}
	if _, ok := raw[META_LENGTH].Value().(int64); !ok {
		t.Errorf("length encoded as %T, expected int64", raw[META_LENGTH].Value())
	}
	if _, ok := raw[META_TRACK_NUMBER].Value().(int32); !ok {
		t.Errorf("track number encoded as %T, expected int32", raw[META_TRACK_NUMBER].Value())
	}
	if _, ok := raw[META_ARTIST].Value().([]string); !ok {
		t.Errorf("artist encoded as %T, expected []string", raw[META_ARTIST].Value())
	}
}

func TestEncodeMetadataSkipsAbsent(t *testing.T) {
	rec, err := DecodeMetadata(map[string]dbus.Variant{
		META_TITLE: dbus.MakeVariant("Song"),
	})
	if err != nil {
		t.Fatalf("DecodeMetadata failed: %v", err)
	}

	raw := EncodeMetadata(rec)
	if len(raw) != 1 {
		t.Errorf("encoded %d keys, expected 1: %v", len(raw), raw)
	}
	if _, ok := raw[META_ALBUM]; ok {
		t.Error("absent album key was encoded")
	}
}

func TestEncodeMetadataNil(t *testing.T) {
	if raw := EncodeMetadata(nil); len(raw) != 0 {
		t.Errorf("EncodeMetadata(nil) = %v, expected empty map", raw)
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		name     string
		length   int64
		expected string
	}{
		{"zero", 0, "0:00"},
		{"five seconds", 5000000, "0:05"},
		{"three minutes", 180000000, "3:00"},
		{"minute and change", 63000000, "1:03"},
		{"milliseconds", 5123000, "0:05.123"},
		{"microseconds", 5123456, "0:05.123456"},
		{"over an hour", 3723000000, "62:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLength(tt.length); got != tt.expected {
				t.Errorf("FormatLength(%d) = %q, expected %q", tt.length, got, tt.expected)
			}
		})
	}
}
