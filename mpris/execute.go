package mpris

import (
	"fmt"
	"strconv"
	"strings"
)

// Result is the normalized outcome of Execute. Exactly one field is set,
// matching what the command produces: a scalar value, a decoded metadata
// record, a composite status, a listing, or a bare acknowledgement for
// fire-and-forget methods.
type Result struct {
	Value     interface{}       `json:"value,omitempty"`
	Metadata  *MetadataRecord   `json:"metadata,omitempty"`
	Status    *Status           `json:"status,omitempty"`
	Tracks    []*MetadataRecord `json:"tracks,omitempty"`
	Playlists []Playlist        `json:"playlists,omitempty"`
	Ack       bool              `json:"ack,omitempty"`
}

type commandEntry struct {
	minArgs int
	maxArgs int
	run     func(c *Client, busName string, args []string) (*Result, error)
}

// commands names every operation the client exposes and marshals its loose
// string arguments. Property commands double as setters when an argument is
// given, as in "volume" versus "volume 0.5".
var commands = map[string]commandEntry{
	"play":       {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Play(d)) }},
	"pause":      {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Pause(d)) }},
	"play-pause": {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.PlayPause(d)) }},
	"stop":       {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Stop(d)) }},
	"next":       {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Next(d)) }},
	"previous":   {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Previous(d)) }},
	"raise":      {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Raise(d)) }},
	"quit":       {0, 0, func(c *Client, d string, _ []string) (*Result, error) { return ackOf(c.Quit(d)) }},

	"seek": {1, 1, func(c *Client, d string, args []string) (*Result, error) {
		offset, err := parseInt64Arg("offset", args[0])
		if err != nil {
			return nil, err
		}
		return ackOf(c.Seek(d, offset))
	}},
	"set-position": {2, 2, func(c *Client, d string, args []string) (*Result, error) {
		position, err := parseInt64Arg("position", args[1])
		if err != nil {
			return nil, err
		}
		return ackOf(c.SetPosition(d, args[0], position))
	}},
	"open-uri": {1, 1, func(c *Client, d string, args []string) (*Result, error) {
		return ackOf(c.OpenUri(d, args[0]))
	}},

	"status": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		st, err := c.Status(d)
		if err != nil {
			return nil, err
		}
		return &Result{Status: st}, nil
	}},
	"playback-status": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		s, err := c.PlaybackStatus(d)
		if err != nil {
			return nil, err
		}
		return &Result{Value: s}, nil
	}},
	"metadata": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		meta, err := c.Metadata(d)
		if err != nil {
			return nil, err
		}
		return &Result{Metadata: meta}, nil
	}},
	"position": {0, 1, func(c *Client, d string, args []string) (*Result, error) {
		if len(args) == 0 {
			pos, err := c.Position(d)
			if err != nil {
				return nil, err
			}
			return &Result{Value: pos}, nil
		}
		target, err := parseInt64Arg("position", args[0])
		if err != nil {
			return nil, err
		}
		return ackOf(c.SeekTo(d, target))
	}},
	"volume": {0, 1, func(c *Client, d string, args []string) (*Result, error) {
		if len(args) == 0 {
			vol, err := c.Volume(d)
			if err != nil {
				return nil, err
			}
			return &Result{Value: vol}, nil
		}
		vol, err := parseFloat64Arg("volume", args[0])
		if err != nil {
			return nil, err
		}
		return ackOf(c.SetVolume(d, vol))
	}},
	"rate": {0, 1, func(c *Client, d string, args []string) (*Result, error) {
		if len(args) == 0 {
			rate, err := c.Rate(d)
			if err != nil {
				return nil, err
			}
			return &Result{Value: rate}, nil
		}
		rate, err := parseFloat64Arg("rate", args[0])
		if err != nil {
			return nil, err
		}
		return ackOf(c.SetRate(d, rate))
	}},
	"shuffle": {0, 1, func(c *Client, d string, args []string) (*Result, error) {
		if len(args) == 0 {
			on, err := c.Shuffle(d)
			if err != nil {
				return nil, err
			}
			return &Result{Value: on}, nil
		}
		on, err := parseBoolArg("shuffle", args[0])
		if err != nil {
			return nil, err
		}
		return ackOf(c.SetShuffle(d, on))
	}},
	"loop-status": {0, 1, func(c *Client, d string, args []string) (*Result, error) {
		if len(args) == 0 {
			loop, err := c.LoopStatus(d)
			if err != nil {
				return nil, err
			}
			return &Result{Value: loop}, nil
		}
		return ackOf(c.SetLoopStatus(d, LoopStatus(args[0])))
	}},
	"identity": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		name, err := c.Identity(d)
		if err != nil {
			return nil, err
		}
		return &Result{Value: name}, nil
	}},
	"capabilities": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		caps, err := c.Capabilities(d)
		if err != nil {
			return nil, err
		}
		return &Result{Value: caps}, nil
	}},

	"list-tracks": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		ids, err := c.Tracks(d)
		if err != nil {
			return nil, err
		}
		records, err := c.TracksMetadata(d, ids)
		if err != nil {
			return nil, err
		}
		return &Result{Tracks: records}, nil
	}},
	"add-track": {1, 3, func(c *Client, d string, args []string) (*Result, error) {
		after := ""
		if len(args) > 1 {
			after = args[1]
		}
		setCurrent := false
		if len(args) > 2 {
			var err error
			if setCurrent, err = parseBoolArg("set_current", args[2]); err != nil {
				return nil, err
			}
		}
		return ackOf(c.AddTrack(d, args[0], after, setCurrent))
	}},
	"remove-track": {1, 1, func(c *Client, d string, args []string) (*Result, error) {
		return ackOf(c.RemoveTrack(d, args[0]))
	}},
	"go-to": {1, 1, func(c *Client, d string, args []string) (*Result, error) {
		return ackOf(c.GoToTrack(d, args[0]))
	}},

	"list-playlists": {0, 4, func(c *Client, d string, args []string) (*Result, error) {
		index, max := uint32(0), uint32(100)
		order, reverse := "Alphabetical", false
		var err error
		switch len(args) {
		case 4:
			if reverse, err = parseBoolArg("reverse", args[3]); err != nil {
				return nil, err
			}
			fallthrough
		case 3:
			order = args[2]
			fallthrough
		case 2:
			if index, err = parseUint32Arg("index", args[0]); err != nil {
				return nil, err
			}
			if max, err = parseUint32Arg("max", args[1]); err != nil {
				return nil, err
			}
		case 1:
			if max, err = parseUint32Arg("max", args[0]); err != nil {
				return nil, err
			}
		}
		playlists, err := c.PlaylistsRange(d, index, max, order, reverse)
		if err != nil {
			return nil, err
		}
		return &Result{Playlists: playlists}, nil
	}},
	"activate-playlist": {1, 1, func(c *Client, d string, args []string) (*Result, error) {
		return ackOf(c.ActivatePlaylist(d, args[0]))
	}},
	"playlist-count": {0, 0, func(c *Client, d string, _ []string) (*Result, error) {
		count, err := c.PlaylistCount(d)
		if err != nil {
			return nil, err
		}
		return &Result{Value: count}, nil
	}},
}

// Execute runs one named command against busName. Arguments arrive as loose
// strings and are marshalled into the typed shapes the bound member expects;
// unknown commands and unparseable arguments fail with ValidationError
// before any bus traffic happens.
func (c *Client) Execute(busName, command string, args []string) (*Result, error) {
	entry, ok := commands[command]
	if !ok {
		return nil, &ValidationError{Field: "command", Message: fmt.Sprintf("unknown command %q", command)}
	}
	if len(args) < entry.minArgs || len(args) > entry.maxArgs {
		return nil, &ValidationError{
			Field:   "args",
			Message: fmt.Sprintf("%s %s", command, arityMessage(entry.minArgs, entry.maxArgs, len(args))),
		}
	}
	return entry.run(c, busName, args)
}

func ackOf(err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	return &Result{Ack: true}, nil
}

func arityMessage(min, max, got int) string {
	switch {
	case min == max && min == 0:
		return fmt.Sprintf("takes no arguments, got %d", got)
	case min == max && min == 1:
		return fmt.Sprintf("takes exactly 1 argument, got %d", got)
	case min == max:
		return fmt.Sprintf("takes exactly %d arguments, got %d", min, got)
	default:
		return fmt.Sprintf("takes %d to %d arguments, got %d", min, max, got)
	}
}

func parseInt64Arg(field, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("cannot parse %q as an integer", s)}
	}
	return n, nil
}

func parseUint32Arg(field, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("cannot parse %q as an unsigned integer", s)}
	}
	return uint32(n), nil
}

func parseFloat64Arg(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("cannot parse %q as a number", s)}
	}
	return f, nil
}

func parseBoolArg(field, s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &ValidationError{Field: field, Message: fmt.Sprintf("cannot parse %q as a boolean", s)}
	}
	return b, nil
}
