package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/entity"
)

// EvalInterval is how often the scheduler re-checks the wall clock.
const EvalInterval = time.Minute

// Scheduler recomputes the serving mode from the wall clock. A manual
// "view full menu" override suspends recomputation and shows every section
// until it is released, at which point the time-based mode returns
// immediately.
type Scheduler struct {
	window entity.ServiceWindow
	now    func() time.Time

	mu       sync.Mutex
	override bool
	current  entity.ServiceMode
	onChange func(entity.ServiceMode)

	stop chan struct{}
	once sync.Once
}

func NewScheduler(window entity.ServiceWindow) *Scheduler {
	s := &Scheduler{
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	s.current = window.ModeNow(s.now())
	return s
}

// SetClock replaces the time source, for tests. The mode is not
// recomputed until the next Evaluate.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// OnChange registers a callback fired (outside the lock) whenever the
// time-based mode changes.
func (s *Scheduler) OnChange(fn func(entity.ServiceMode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Current returns the time-based mode and whether the override is active.
func (s *Scheduler) Current() (entity.ServiceMode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.override
}

// Evaluate recomputes the mode from the clock unless the override holds.
func (s *Scheduler) Evaluate() entity.ServiceMode {
	s.mu.Lock()
	if s.override {
		mode := s.current
		s.mu.Unlock()
		return mode
	}
	mode := s.window.ModeNow(s.now())
	changed := mode != s.current
	s.current = mode
	fn := s.onChange
	s.mu.Unlock()

	if changed {
		log.Info().Str("mode", mode.String()).Msg("serving mode changed")
		if fn != nil {
			fn(mode)
		}
	}
	return mode
}

// SetFullMenu turns the override on or off. Releasing it re-evaluates
// immediately so no residual state survives the toggle.
func (s *Scheduler) SetFullMenu(on bool) {
	s.mu.Lock()
	s.override = on
	s.mu.Unlock()
	if !on {
		s.Evaluate()
	}
}

// FullMenu reports whether the override is active.
func (s *Scheduler) FullMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.override
}

// VisibleSections returns the section ids currently shown: everything under
// the override, otherwise the current mode's set.
func (s *Scheduler) VisibleSections() map[string]bool {
	s.mu.Lock()
	override, mode := s.override, s.current
	s.mu.Unlock()

	if override {
		all := make(map[string]bool, len(entity.AllSections))
		for _, sec := range entity.AllSections {
			all[sec] = true
		}
		return all
	}
	return entity.VisibleSections(mode)
}

// Run evaluates once right away and then on every tick until Stop.
func (s *Scheduler) Run() {
	s.Evaluate()
	t := time.NewTicker(EvalInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.Evaluate()
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
}
