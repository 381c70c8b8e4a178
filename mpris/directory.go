package mpris

import (
	"strconv"
	"strings"

	"github.com/b0bbywan/go-mpris-cli/logger"
)

// ShortName strips the well-known MPRIS prefix from a bus name, so
// "org.mpris.MediaPlayer2.vlc" becomes "vlc".
func ShortName(busName string) string {
	return strings.TrimPrefix(busName, MPRIS_PREFIX+".")
}

// playerNames lists the MPRIS bus names currently on the bus, preserving
// bus-provided order.
func (c *Client) playerNames() ([]string, error) {
	if names, ok := c.names.Get(CACHE_KEY); ok {
		return names, nil
	}

	all, err := c.bus.ListNames()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for _, name := range all {
		if strings.HasPrefix(name, MPRIS_PREFIX+".") {
			names = append(names, name)
		}
	}

	logger.Debug("[mpris] found %d players on the bus", len(names))
	c.names.Set(CACHE_KEY, names)
	return names, nil
}

// ListPlayers enumerates the MPRIS players on the bus in bus-provided
// order. Identity is best-effort; a player that fails the lookup is still
// listed by name.
func (c *Client) ListPlayers() ([]Player, error) {
	names, err := c.playerNames()
	if err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(names))
	for _, name := range names {
		p := Player{
			BusName: name,
			Name:    ShortName(name),
		}
		if identity, err := c.Identity(name); err == nil {
			p.Identity = identity
		} else {
			logger.Debug("[mpris] no identity for %s: %v", name, err)
		}
		players = append(players, p)
	}
	return players, nil
}

// Resolve maps a user-supplied selector to a bus name. An empty selector
// picks the first player in bus order. An integer selector indexes the list
// the players command prints. Otherwise an exact bus-name match wins, then
// an exact short-name match, then the first player whose short name starts
// with the selector. An empty bus always fails with NoPlayers.
func (c *Client) Resolve(selector string) (string, error) {
	names, err := c.playerNames()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", &NoPlayersError{}
	}

	if selector == "" {
		return names[0], nil
	}

	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 || idx >= len(names) {
			return "", &NoSuchPlayerError{Selector: selector}
		}
		return names[idx], nil
	}

	for _, name := range names {
		if name == selector {
			return name, nil
		}
	}

	full := MPRIS_PREFIX + "." + selector
	for _, name := range names {
		if name == full {
			return name, nil
		}
	}

	for _, name := range names {
		if strings.HasPrefix(ShortName(name), selector) {
			return name, nil
		}
	}

	return "", &NoSuchPlayerError{Selector: selector}
}
