package mpris

import (
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		name     string
		busName  string
		expected string
	}{
		{"simple player", "org.mpris.MediaPlayer2.vlc", "vlc"},
		{"instance suffix", "org.mpris.MediaPlayer2.vlc.instance7789", "vlc.instance7789"},
		{"chromium profile", "org.mpris.MediaPlayer2.chromium.instance1234", "chromium.instance1234"},
		{"not mpris", "org.freedesktop.DBus", "org.freedesktop.DBus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortName(tt.busName); got != tt.expected {
				t.Errorf("ShortName(%q) = %q, expected %q", tt.busName, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	names := []string{
		"org.mpris.MediaPlayer2.vlcmega",
		"org.mpris.MediaPlayer2.vlc",
		"org.mpris.MediaPlayer2.spotify",
		"org.mpris.MediaPlayer2.chromium.instance1234",
	}

	tests := []struct {
		name     string
		selector string
		expected string
	}{
		{"empty selector picks first", "", "org.mpris.MediaPlayer2.vlcmega"},
		{"index zero", "0", "org.mpris.MediaPlayer2.vlcmega"},
		{"index two", "2", "org.mpris.MediaPlayer2.spotify"},
		{"full bus name", "org.mpris.MediaPlayer2.spotify", "org.mpris.MediaPlayer2.spotify"},
		// Exact short-name match wins over an earlier prefix candidate.
		{"exact beats prefix", "vlc", "org.mpris.MediaPlayer2.vlc"},
		{"short name", "spotify", "org.mpris.MediaPlayer2.spotify"},
		{"prefix first match", "vl", "org.mpris.MediaPlayer2.vlcmega"},
		{"prefix of instance", "chromium", "org.mpris.MediaPlayer2.chromium.instance1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTransport{names: names}
			client := newTestClient(stub)

			busName, err := client.Resolve(tt.selector)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.selector, err)
			}
			if busName != tt.expected {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.selector, busName, tt.expected)
			}
		})
	}
}

func TestResolveNoSuchPlayer(t *testing.T) {
	names := []string{
		"org.mpris.MediaPlayer2.vlc",
		"org.mpris.MediaPlayer2.spotify",
	}

	tests := []struct {
		name     string
		selector string
	}{
		{"unknown name", "mpd"},
		{"index out of range", "2"},
		{"negative index", "-1"},
		{"full name not running", "org.mpris.MediaPlayer2.mpd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTransport{names: names}
			client := newTestClient(stub)

			_, err := client.Resolve(tt.selector)
			var nsp *NoSuchPlayerError
			if !errors.As(err, &nsp) {
				t.Fatalf("Resolve(%q) error = %v, expected NoSuchPlayerError", tt.selector, err)
			}
			if nsp.Selector != tt.selector {
				t.Errorf("NoSuchPlayerError.Selector = %q, expected %q", nsp.Selector, tt.selector)
			}
		})
	}
}

func TestResolveEmptyBus(t *testing.T) {
	// An empty bus is NoPlayers no matter what was asked for.
	for _, selector := range []string{"", "vlc", "0"} {
		stub := &stubTransport{names: []string{"org.freedesktop.DBus", ":1.42"}}
		client := newTestClient(stub)

		_, err := client.Resolve(selector)
		var np *NoPlayersError
		if !errors.As(err, &np) {
			t.Errorf("Resolve(%q) on empty bus error = %v, expected NoPlayersError", selector, err)
		}
	}
}

func TestResolveCachesNames(t *testing.T) {
	stub := &stubTransport{names: []string{"org.mpris.MediaPlayer2.vlc"}}
	client := New(stub, 30*time.Second)

	if _, err := client.Resolve("vlc"); err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	if _, err := client.Resolve("vlc"); err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if stub.listCalls != 1 {
		t.Errorf("ListNames called %d times, expected 1 (cached)", stub.listCalls)
	}
}

func TestListPlayers(t *testing.T) {
	stub := &stubTransport{
		names: []string{
			"org.freedesktop.DBus",
			"org.mpris.MediaPlayer2.vlc",
			":1.42",
			"org.mpris.MediaPlayer2.spotify",
		},
		node: testNode(rootIface(), playerIface()),
		props: map[string]dbus.Variant{
			MPRIS_INTERFACE + ".Identity": dbus.MakeVariant("Test Player"),
		},
	}
	client := newTestClient(stub)

	players, err := client.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].BusName != "org.mpris.MediaPlayer2.vlc" {
		t.Errorf("players[0].BusName = %q", players[0].BusName)
	}
	if players[0].Name != "vlc" {
		t.Errorf("players[0].Name = %q, expected vlc", players[0].Name)
	}
	if players[0].Identity != "Test Player" {
		t.Errorf("players[0].Identity = %q, expected Test Player", players[0].Identity)
	}
	if players[1].Name != "spotify" {
		t.Errorf("players[1].Name = %q, expected spotify", players[1].Name)
	}
}

func TestListPlayersWithoutIdentity(t *testing.T) {
	// A player whose root interface lacks Identity still gets listed.
	stub := &stubTransport{
		names: []string{"org.mpris.MediaPlayer2.bare"},
		node: testNode(
			introspect.Interface{Name: MPRIS_INTERFACE, Methods: methodList("Raise", "Quit")},
			playerIface(),
		),
	}
	client := newTestClient(stub)

	players, err := client.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	if players[0].Identity != "" {
		t.Errorf("players[0].Identity = %q, expected empty", players[0].Identity)
	}
	if players[0].Name != "bare" {
		t.Errorf("players[0].Name = %q, expected bare", players[0].Name)
	}
}

func TestListPlayersEmpty(t *testing.T) {
	stub := &stubTransport{names: []string{"org.freedesktop.DBus"}}
	client := newTestClient(stub)

	players, err := client.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 0 {
		t.Errorf("expected no players, got %d", len(players))
	}
}
