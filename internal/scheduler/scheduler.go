// Package scheduler drives the real-time tick cadence: one pet tick plus
// world side effects per interval, listener notification, and periodic
// autosave.
package scheduler

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/world"
)

// DefaultTickInterval is the base cadence.
const DefaultTickInterval = 15 * time.Second

// TickRecord is emitted to listeners after every online tick.
type TickRecord struct {
	TickNumber   uint64          `json:"tick_number"`
	Timestamp    time.Time       `json:"timestamp"`
	Duration     time.Duration   `json:"duration"`
	Actions      []engine.Action `json:"actions"`
	StateChanges []string        `json:"state_changes"`
}

// Listener receives the full post-tick state. Listener panics are caught
// and logged, never propagated into the tick.
type Listener func(gs *world.GameState, rec TickRecord)

// Saver persists the game state. Failures are observed but never block
// or roll back the already-applied tick.
type Saver interface {
	Save(gs *world.GameState) error
}

// Scheduler owns its timer handle and listener set. Start and Stop are
// idempotent. Exactly one tick executes at a time; a new tick is only
// scheduled after the previous callback returns.
type Scheduler struct {
	mu sync.Mutex

	cat      *catalog.Catalog
	state    *world.GameState
	interval time.Duration
	rng      *rand.Rand

	store         Saver // optional
	autosaveEvery int   // ticks between autosaves, 0 disables
	quests        world.QuestReporter

	listeners  map[int]Listener
	nextListID int

	running bool
	stopCh  chan struct{}
}

// New creates a stopped scheduler over a game state.
func New(cat *catalog.Catalog, gs *world.GameState, interval time.Duration, rng *rand.Rand) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		cat:       cat,
		state:     gs,
		interval:  interval,
		rng:       rng,
		listeners: map[int]Listener{},
	}
}

// WithAutosave wires a store and cadence. Returns the scheduler for
// chaining during setup.
func (s *Scheduler) WithAutosave(store Saver, everyTicks int) *Scheduler {
	s.store = store
	s.autosaveEvery = everyTicks
	return s
}

// WithQuestReporter wires the external quest hook.
func (s *Scheduler) WithQuestReporter(q world.QuestReporter) *Scheduler {
	s.quests = q
	return s
}

// AddListener registers a listener and returns its removal handle.
func (s *Scheduler) AddListener(l Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextListID++
	s.listeners[s.nextListID] = l
	return s.nextListID
}

// RemoveListener unregisters a listener. Unknown ids are a no-op.
func (s *Scheduler) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// Start begins ticking. Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	go s.run(s.stopCh)
	slog.Info("scheduler started", "interval", s.interval, "tick", s.state.TickCount)
}

// Stop halts ticking. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	slog.Info("scheduler stopped", "tick", s.state.TickCount)
}

// State returns the current game state. Callers must serialize access
// with the tick loop if they intend to mutate it.
func (s *Scheduler) State() *world.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) run(stopCh chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick runs one full simulation step. The pet transition is computed as a
// pure result and committed only after the processor returns; a panic
// anywhere in the step is logged and the tick abandoned with the previous
// snapshot intact.
func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tick abandoned", "tick", s.state.TickCount, "panic", r)
		}
	}()

	start := time.Now()
	s.state.TickCount++
	tickNum := s.state.TickCount

	var actions []engine.Action
	var tags []string

	if s.state.Pet != nil {
		res := engine.ProcessPetTick(s.state.Pet, s.cat)
		s.state.Pet = res.Pet
		actions = append(actions, res.Actions...)
		tags = append(tags, res.StateChanges...)

		for _, a := range res.Actions {
			if a.Kind == engine.ActionPetDied {
				// Care life bottomed out: the pet is gone and the world
				// resets to the start location.
				s.state.Pet = nil
				s.state.World.Travel = nil
				s.state.World.CurrentLocationID = s.cat.StartLocationID()
				break
			}
		}
	}

	actions = append(actions, world.AdvanceExploration(s.state, s.cat, s.rng, s.quests, tickNum)...)
	actions = append(actions, world.AdvanceTravel(s.state, 1)...)
	actions = append(actions, world.AdvanceActivities(s.state, s.cat, 1, s.rng)...)

	rec := TickRecord{
		TickNumber:   tickNum,
		Timestamp:    start,
		Duration:     time.Since(start),
		Actions:      actions,
		StateChanges: tags,
	}
	for id, l := range s.listeners {
		s.notify(id, l, rec)
	}

	if s.store != nil && s.autosaveEvery > 0 && tickNum%uint64(s.autosaveEvery) == 0 {
		s.state.LastSaveTime = time.Now()
		if err := s.store.Save(s.state); err != nil {
			slog.Error("autosave failed", "tick", tickNum, "error", err)
		}
	}
}

func (s *Scheduler) notify(id int, l Listener, rec TickRecord) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("listener panicked", "listener", id, "tick", rec.TickNumber, "panic", r)
		}
	}()
	l(s.state, rec)
}
