package mpris

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5/introspect"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
)

func TestPresenceString(t *testing.T) {
	if Present.String() != "present" || Absent.String() != "absent" || Unknown.String() != "unknown" {
		t.Errorf("Presence strings = %s/%s/%s", Present, Absent, Unknown)
	}
}

func TestBuildCapabilitySet(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		caps := buildCapabilitySet(testNode(rootIface(), playerIface()))

		if got := caps.Interface(MPRIS_INTERFACE); got != Present {
			t.Errorf("root interface = %s, expected present", got)
		}
		if got := caps.Interface(MPRIS_PLAYER_IFACE); got != Present {
			t.Errorf("player interface = %s, expected present", got)
		}
		// MPRIS interfaces missing from a non-empty document are absent.
		if got := caps.Interface(MPRIS_TRACKLIST_IFACE); got != Absent {
			t.Errorf("tracklist interface = %s, expected absent", got)
		}
		if got := caps.Interface(MPRIS_PLAYLISTS_IFACE); got != Absent {
			t.Errorf("playlists interface = %s, expected absent", got)
		}

		if got := caps.Member(MPRIS_PLAYER_IFACE, "Play"); got != Present {
			t.Errorf("Play = %s, expected present", got)
		}
		if got := caps.Member(MPRIS_PLAYER_IFACE, "Shuffle"); got != Present {
			t.Errorf("Shuffle property = %s, expected present", got)
		}
		// The player interface listed its members, so an unlisted one is absent.
		if got := caps.Member(MPRIS_PLAYER_IFACE, "Teleport"); got != Absent {
			t.Errorf("unlisted member = %s, expected absent", got)
		}
	})

	t.Run("interface without member detail", func(t *testing.T) {
		caps := buildCapabilitySet(testNode(
			introspect.Interface{Name: MPRIS_PLAYER_IFACE},
		))

		if got := caps.Interface(MPRIS_PLAYER_IFACE); got != Present {
			t.Errorf("player interface = %s, expected present", got)
		}
		// No members were listed, so nothing can be ruled out.
		if got := caps.Member(MPRIS_PLAYER_IFACE, "Play"); got != Unknown {
			t.Errorf("Play = %s, expected unknown", got)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		caps := buildCapabilitySet(&introspect.Node{})

		for _, iface := range mprisInterfaces {
			if got := caps.Interface(iface); got != Unknown {
				t.Errorf("%s = %s, expected unknown", iface, got)
			}
		}
		if got := caps.Member(MPRIS_PLAYER_IFACE, "Play"); got != Unknown {
			t.Errorf("Play = %s, expected unknown", got)
		}
	})

	t.Run("nil document", func(t *testing.T) {
		caps := buildCapabilitySet(nil)
		if got := caps.Interface(MPRIS_PLAYER_IFACE); got != Unknown {
			t.Errorf("player interface = %s, expected unknown", got)
		}
	})

	t.Run("member of absent interface", func(t *testing.T) {
		caps := buildCapabilitySet(testNode(rootIface(), playerIface()))
		if got := caps.Member(MPRIS_TRACKLIST_IFACE, "Tracks"); got != Absent {
			t.Errorf("Tracks = %s, expected absent", got)
		}
	})

	t.Run("foreign interfaces carry no absence conclusions", func(t *testing.T) {
		caps := buildCapabilitySet(testNode(rootIface(), playerIface(),
			introspect.Interface{Name: "org.freedesktop.DBus.Properties", Methods: methodList("Get", "Set", "GetAll")},
		))
		if got := caps.Interface("org.freedesktop.DBus.Properties"); got != Present {
			t.Errorf("Properties interface = %s, expected present", got)
		}
		if got := caps.Interface("org.example.Custom"); got != Unknown {
			t.Errorf("unlisted foreign interface = %s, expected unknown", got)
		}
	})
}

func TestProbeCachesResult(t *testing.T) {
	stub := &stubTransport{node: testNode(rootIface(), playerIface())}
	client := newTestClient(stub)

	if _, err := client.Probe("org.mpris.MediaPlayer2.vlc"); err != nil {
		t.Fatalf("first Probe failed: %v", err)
	}
	if _, err := client.Probe("org.mpris.MediaPlayer2.vlc"); err != nil {
		t.Fatalf("second Probe failed: %v", err)
	}
	if stub.introspectCalls != 1 {
		t.Errorf("Introspect called %d times, expected 1 (cached)", stub.introspectCalls)
	}
}

func TestProbeRejectedIntrospection(t *testing.T) {
	// A player that refuses introspection yields an all-unknown set, not an
	// error: calls against it are attempted optimistically.
	stub := &stubTransport{
		introspectErr: &idbus.RejectedError{
			Method: "Introspect",
			Name:   "org.freedesktop.DBus.Error.UnknownMethod",
		},
	}
	client := newTestClient(stub)

	caps, err := client.Probe("org.mpris.MediaPlayer2.shy")
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if got := caps.Interface(MPRIS_PLAYER_IFACE); got != Unknown {
		t.Errorf("player interface = %s, expected unknown", got)
	}
	if got := caps.Member(MPRIS_PLAYER_IFACE, "Play"); got != Unknown {
		t.Errorf("Play = %s, expected unknown", got)
	}
}

func TestProbeMalformedIntrospection(t *testing.T) {
	stub := &stubTransport{
		introspectErr: &idbus.MalformedReplyError{What: "Introspect", Err: errors.New("bad xml")},
	}
	client := newTestClient(stub)

	caps, err := client.Probe("org.mpris.MediaPlayer2.garbled")
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if got := caps.Interface(MPRIS_PLAYER_IFACE); got != Unknown {
		t.Errorf("player interface = %s, expected unknown", got)
	}
}

func TestProbeUnreachable(t *testing.T) {
	stub := &stubTransport{
		introspectErr: &idbus.UnreachableError{Dest: "org.mpris.MediaPlayer2.gone", Err: errors.New("no owner")},
	}
	client := newTestClient(stub)

	_, err := client.Probe("org.mpris.MediaPlayer2.gone")
	var ue *idbus.UnreachableError
	if !errors.As(err, &ue) {
		t.Fatalf("Probe error = %v, expected UnreachableError", err)
	}
}

func TestProbeInvalidBusName(t *testing.T) {
	stub := &stubTransport{}
	client := newTestClient(stub)

	_, err := client.Probe("org.freedesktop.DBus")
	var ib *InvalidBusNameError
	if !errors.As(err, &ib) {
		t.Fatalf("Probe error = %v, expected InvalidBusNameError", err)
	}
	if stub.transportCalls() != 0 {
		t.Errorf("invalid name reached the bus: %d calls", stub.transportCalls())
	}
}
