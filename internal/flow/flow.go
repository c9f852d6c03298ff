// Package flow is the scene machine: Menu, Instructions, Transition, Game
// and End, plus the Director that picks the next level.
package flow

import (
	"errors"
	"fmt"
	"slices"
)

type Scene int

const (
	Menu Scene = iota
	Instructions
	Transition
	Game
	End
)

func (s Scene) String() string {
	switch s {
	case Menu:
		return "menu"
	case Instructions:
		return "instructions"
	case Transition:
		return "transition"
	case Game:
		return "game"
	case End:
		return "end"
	}
	return fmt.Sprintf("scene(%d)", int(s))
}

// State is the active scene and, for Transition and Game, its level id.
type State struct {
	Scene Scene
	Level int
}

var ErrInvalidTransition = errors.New("invalid scene transition")

var edges = map[Scene][]Scene{
	Menu:         {Instructions, Transition, End},
	Instructions: {Menu},
	Transition:   {Game},
	Game:         {Transition, End, Menu},
	End:          {Menu},
}

// Machine records the current scene and notifies OnEnter hooks.
type Machine struct {
	state State
	hooks []func(State)
}

func NewMachine() *Machine { return &Machine{state: State{Scene: Menu}} }

func (m *Machine) State() State { return m.state }

func (m *Machine) OnEnter(fn func(State)) { m.hooks = append(m.hooks, fn) }

// Go moves to next if the edge exists. The state is untouched on error.
func (m *Machine) Go(next State) error {
	if !slices.Contains(edges[m.state.Scene], next.Scene) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state.Scene, next.Scene)
	}
	if next.Scene != Transition && next.Scene != Game {
		next.Level = 0
	}
	m.state = next
	for _, fn := range m.hooks {
		fn(next)
	}
	return nil
}
