package cli

import (
	"errors"

	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/mpris"
)

// Exit codes, one per error kind, so scripts can tell "no player running"
// from "player refused the command" without parsing stderr.
const (
	exitOK                   = 0
	exitUsage                = 1
	exitUnsupportedMember    = 2
	exitUnsupportedInterface = 3
	exitNoPlayers            = 4
	exitNoSuchPlayer         = 5
	exitUnreachable          = 6
	exitTimeout              = 7
	exitRejected             = 8
	exitDecode               = 9
)

// exitCode maps an error to the process exit code. Validation failures and
// anything unrecognized land on the usage code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var (
		um *mpris.UnsupportedMemberError
		ui *mpris.UnsupportedInterfaceError
		np *mpris.NoPlayersError
		ns *mpris.NoSuchPlayerError
		de *mpris.DecodeError
		ue *idbus.UnreachableError
		te *idbus.TimeoutError
		re *idbus.RejectedError
		me *idbus.MalformedReplyError
	)

	switch {
	case errors.As(err, &um):
		return exitUnsupportedMember
	case errors.As(err, &ui):
		return exitUnsupportedInterface
	case errors.As(err, &np):
		return exitNoPlayers
	case errors.As(err, &ns):
		return exitNoSuchPlayer
	case errors.As(err, &de), errors.As(err, &me):
		return exitDecode
	case errors.As(err, &ue):
		return exitUnreachable
	case errors.As(err, &te):
		return exitTimeout
	case errors.As(err, &re):
		return exitRejected
	}
	return exitUsage
}
