// internal/app/controls.go
package app

import (
	"fmt"

	"go-cube-train/internal/easing"
	"go-cube-train/internal/shape"
)

// Command is one control-panel action, independent of the host's input
// library.
type Command int

const (
	CmdNextShape Command = iota
	CmdNextPattern
	CmdNextRollEasing
	CmdNextMoveEasing
	CmdToggleSpawning
	CmdToggleDirection
	CmdClear
)

// runeCommands is the keyboard layout shared by every host.
var runeCommands = map[rune]Command{
	's': CmdNextShape,
	'p': CmdNextPattern,
	'e': CmdNextRollEasing,
	'm': CmdNextMoveEasing,
	' ': CmdToggleSpawning,
	'd': CmdToggleDirection,
	'c': CmdClear,
}

// CommandForRune maps a (lower-case) key to its command.
func CommandForRune(r rune) (Command, bool) {
	cmd, ok := runeCommands[r]
	return cmd, ok
}

// Apply runs cmd against the animator between ticks.
func (a *Animator) Apply(cmd Command) error {
	cfg := a.cfg
	switch cmd {
	case CmdNextShape:
		return a.SetShapeKind(shape.Next(cfg.ShapeKind))
	case CmdNextPattern:
		return a.SetSpawnPattern(a.patterns.Next(cfg.SpawnPattern))
	case CmdNextRollEasing:
		return a.SetRollEasing(easing.Next(cfg.RollEasing))
	case CmdNextMoveEasing:
		return a.SetMoveEasing(easing.Next(cfg.MoveEasing))
	case CmdToggleSpawning:
		return a.ToggleSpawning()
	case CmdToggleDirection:
		return a.ToggleDirection()
	case CmdClear:
		a.FullClear()
	default:
		return fmt.Errorf("unknown command %d", int(cmd))
	}
	return nil
}
