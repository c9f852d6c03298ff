package flow

import (
	"fmt"
	"log"
	"slices"
)

// Progress is the part of progress.Tracker the director needs.
type Progress interface {
	AddPlayedLevel(id int)
	SaveCurrentLevel(id int)
	CurrentLevel() int
	HasCurrentLevel() bool
	ClearProgress()
	UnplayedLevels(all []int) []int
	RandomUnplayedLevel(all []int) (int, bool)
}

type Director struct {
	*Machine
	progress Progress
	levels   []int
}

func NewDirector(p Progress, levels []int) *Director {
	return &Director{Machine: NewMachine(), progress: p, levels: slices.Clone(levels)}
}

func (d *Director) Levels() []int { return slices.Clone(d.levels) }

// StartGame resumes the saved level when it is still unplayed, otherwise
// draws a random unplayed one. With nothing left it goes to End.
func (d *Director) StartGame() error {
	if d.state.Scene != Menu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, d.state.Scene)
	}
	unplayed := d.progress.UnplayedLevels(d.levels)
	if len(unplayed) == 0 {
		return d.Go(State{Scene: End})
	}
	if d.progress.HasCurrentLevel() {
		if cur := d.progress.CurrentLevel(); slices.Contains(unplayed, cur) {
			return d.toLevel(cur)
		}
	}
	next, _ := d.progress.RandomUnplayedLevel(d.levels)
	return d.toLevel(next)
}

// CompleteLevel marks id played and moves on.
func (d *Director) CompleteLevel(id int) error {
	if d.state.Scene != Game || d.state.Level != id {
		return fmt.Errorf("%w: complete level %d from %s", ErrInvalidTransition, id, d.state.Scene)
	}
	d.progress.AddPlayedLevel(id)
	next, ok := d.progress.RandomUnplayedLevel(d.levels)
	if !ok {
		log.Println("flow: all levels played")
		return d.Go(State{Scene: End})
	}
	return d.toLevel(next)
}

func (d *Director) toLevel(id int) error {
	if err := d.Go(State{Scene: Transition, Level: id}); err != nil {
		return err
	}
	d.progress.SaveCurrentLevel(id)
	return nil
}

func (d *Director) TransitionDone() error {
	if d.state.Scene != Transition {
		return fmt.Errorf("%w: transition done in %s", ErrInvalidTransition, d.state.Scene)
	}
	return d.Go(State{Scene: Game, Level: d.state.Level})
}

// Quit leaves a running level for the menu.
func (d *Director) Quit() error {
	if d.state.Scene != Game {
		return fmt.Errorf("%w: quit from %s", ErrInvalidTransition, d.state.Scene)
	}
	return d.Go(State{Scene: Menu})
}

func (d *Director) ShowInstructions() error {
	return d.Go(State{Scene: Instructions})
}

// BackToMenu is used by the Instructions and End scenes.
func (d *Director) BackToMenu() error {
	if d.state.Scene == Game {
		return fmt.Errorf("%w: use quit to leave a level", ErrInvalidTransition)
	}
	return d.Go(State{Scene: Menu})
}

func (d *Director) ResetProgress() error {
	if d.state.Scene != Menu {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, d.state.Scene)
	}
	d.progress.ClearProgress()
	return nil
}
