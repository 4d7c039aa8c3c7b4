package types

import "strings"

// Command is a fully split CLI invocation: family, subcommand and, for privileges, an action.
type Command struct {
	Family     ResourceFamily `json:"family"`
	Subcommand Subcommand     `json:"subcommand"`
	Action     Action         `json:"action,omitempty"`
}

func NewCommand(family ResourceFamily, sub Subcommand, action ...Action) Command {
	c := Command{Family: family, Subcommand: sub}
	if len(action) > 0 {
		c.Action = action[0]
	}
	return c
}

func (c Command) String() string {
	parts := []string{string(c.Family), string(c.Subcommand)}
	if c.Action != ActionNone {
		parts = append(parts, string(c.Action))
	}
	return strings.Join(parts, " ")
}
