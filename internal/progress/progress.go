// Package progress tracks which levels have been played, the level in
// progress and the chosen control scheme. Every operation is best effort:
// storage errors are logged and a sensible default is returned.
package progress

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/JozefSVK/MazeRun/internal/input"
	"github.com/JozefSVK/MazeRun/internal/storage"
)

const (
	PlayedLevelsKey = "mazerun_played_levels"
	CurrentLevelKey = "mazerun_current_level"
	ControlTypeKey  = "controlType"

	opTimeout = 2 * time.Second
)

type Tracker struct {
	store storage.Store

	mu  sync.Mutex
	rng *rand.Rand
}

// New wraps store. A nil rng gets a time-seeded one.
func New(store storage.Store, rng *rand.Rand) *Tracker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tracker{store: store, rng: rng}
}

func ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

func (t *Tracker) PlayedLevels() []int {
	c, cancel := ctx()
	defer cancel()
	raw, ok, err := t.store.Get(c, PlayedLevelsKey)
	if err != nil {
		log.Println("progress: get played levels:", err)
		return []int{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []int{}
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Println("progress: get played levels:", err)
		return []int{}
	}
	if ids == nil {
		ids = []int{}
	}
	return ids
}

// AddPlayedLevel records id once.
func (t *Tracker) AddPlayedLevel(id int) {
	played := t.PlayedLevels()
	if slices.Contains(played, id) {
		return
	}
	played = append(played, id)
	b, err := json.Marshal(played)
	if err != nil {
		log.Println("progress: save played level:", err)
		return
	}
	c, cancel := ctx()
	defer cancel()
	if err := t.store.Set(c, PlayedLevelsKey, string(b)); err != nil {
		log.Println("progress: save played level:", err)
	}
}

func (t *Tracker) SaveCurrentLevel(id int) {
	c, cancel := ctx()
	defer cancel()
	if err := t.store.Set(c, CurrentLevelKey, strconv.Itoa(id)); err != nil {
		log.Println("progress: save current level:", err)
	}
}

// CurrentLevel defaults to 1 when nothing valid is stored.
func (t *Tracker) CurrentLevel() int {
	c, cancel := ctx()
	defer cancel()
	raw, ok, err := t.store.Get(c, CurrentLevelKey)
	if err != nil {
		log.Println("progress: get current level:", err)
		return 1
	}
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Println("progress: get current level:", err)
		return 1
	}
	return n
}

// HasCurrentLevel reports whether a current level was ever saved.
func (t *Tracker) HasCurrentLevel() bool {
	c, cancel := ctx()
	defer cancel()
	_, ok, err := t.store.Get(c, CurrentLevelKey)
	return err == nil && ok
}

// ClearProgress forgets played and current levels. The control type stays.
func (t *Tracker) ClearProgress() {
	c, cancel := ctx()
	defer cancel()
	if err := t.store.Delete(c, PlayedLevelsKey, CurrentLevelKey); err != nil {
		log.Println("progress: clear:", err)
	}
}

// UnplayedLevels keeps the order of all.
func (t *Tracker) UnplayedLevels(all []int) []int {
	played := t.PlayedLevels()
	out := make([]int, 0, len(all))
	for _, id := range all {
		if !slices.Contains(played, id) {
			out = append(out, id)
		}
	}
	return out
}

func (t *Tracker) AllLevelsPlayed(all []int) bool {
	return len(t.UnplayedLevels(all)) == 0
}

// RandomUnplayedLevel picks uniformly among unplayed ids.
func (t *Tracker) RandomUnplayedLevel(all []int) (int, bool) {
	left := t.UnplayedLevels(all)
	if len(left) == 0 {
		return 0, false
	}
	t.mu.Lock()
	i := t.rng.Intn(len(left))
	t.mu.Unlock()
	return left[i], true
}

// ControlType returns the saved scheme or def.
func (t *Tracker) ControlType(def input.Kind) input.Kind {
	c, cancel := ctx()
	defer cancel()
	raw, ok, err := t.store.Get(c, ControlTypeKey)
	if err != nil {
		log.Println("progress: get control type:", err)
		return def
	}
	if !ok {
		return def
	}
	k, valid := input.ParseKind(raw)
	if !valid {
		return def
	}
	return k
}

func (t *Tracker) SetControlType(k input.Kind) {
	c, cancel := ctx()
	defer cancel()
	if err := t.store.Set(c, ControlTypeKey, string(k)); err != nil {
		log.Println("progress: save control type:", err)
	}
}
