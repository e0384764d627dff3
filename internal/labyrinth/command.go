package labyrinth

import (
	"fmt"
	"strconv"
	"strings"
)

// #region parse
// ParseCommand classifies an already lower-cased line. Any line starting with
// "twist" is a twist command; its second field must parse as an integer.
func ParseCommand(cmd string) Command {
	switch {
	case strings.HasPrefix(cmd, "twist"):
		face, err := parseFace(cmd)
		return Command{Kind: CommandTwist, Face: face, Err: err}
	case cmd == "enter":
		return Command{Kind: CommandEnter}
	case cmd == "deeper":
		return Command{Kind: CommandDeeper}
	}
	return Command{Kind: CommandUnknown}
}

func parseFace(cmd string) (int, error) {
	fields := strings.Fields(cmd)
	if len(fields) < 2 {
		return 0, ErrMissingFace
	}
	face, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFace, fields[1])
	}
	return face, nil
}

// #endregion parse
