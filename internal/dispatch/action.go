// Package dispatch forwards `fleet build` and `fleet run` to cargo after
// regenerating the cargo configuration.
package dispatch

import "fmt"

// Action is a cargo subcommand fleet knows how to forward.
type Action string

const (
	ActionBuild Action = "build"
	ActionRun   Action = "run"
)

// ParseAction maps a command-line word to an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuild, ActionRun:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unrecognized action %q", s)
	}
}
