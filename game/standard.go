package game

import (
	"fmt"
	"strings"
)

// NewRules resolves a rule set by name, ignoring case. Connect uses inARow as
// its row length.
func NewRules(name string, inARow int) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return Hex{}, nil
	case "connect", "tictactoe":
		if inARow <= 0 {
			return nil, fmt.Errorf("connect rules need a positive row length, got %d", inARow)
		}
		return NewConnect(inARow), nil
	}
	return nil, fmt.Errorf("unknown rules %q", name)
}
