// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/vidcemu/curated"
)

// Sentinal error patterns returned by the scheduler.
const (
	Reentrant    = "scheduler: reentrant call to %s"
	NoHandler    = "scheduler: no handler attached to %s timer"
	InvalidTimer = "scheduler: invalid timer (%d)"
	TimeReversed = "scheduler: cannot advance backwards (now %s, requested %s)"
)

// Handler is implemented by anything that wants to be told about a timer
// firing.
type Handler interface {
	TimerFired(id Timer)
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(id Timer)

// TimerFired implements the Handler interface.
func (f HandlerFunc) TimerFired(id Timer) {
	f(id)
}

// Scheduler maintains the virtual timeline and the due time of every timer.
// The zero value is not usable. Use NewScheduler().
type Scheduler struct {
	now      Time
	due      [NumTimers]Time
	handlers [NumTimers]Handler

	// the number of times each timer has fired since the last reset
	fired [NumTimers]uint64

	// true while a handler is running
	firing bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. All timers start disarmed.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.Reset()
	return s
}

// Reset returns virtual time to zero and disarms all timers. Attached handlers
// are kept.
func (s *Scheduler) Reset() {
	s.now = 0
	for i := range s.due {
		s.due[i] = Never
		s.fired[i] = 0
	}
}

func (s *Scheduler) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("now: %s", s.now))
	for _, p := range s.Pending() {
		b.WriteString(fmt.Sprintf(" [%s]", p))
	}
	return b.String()
}

// Attach a handler to the timer. Replaces any previous handler. A nil handler
// detaches the timer.
func (s *Scheduler) Attach(id Timer, h Handler) error {
	if id < 0 || id >= NumTimers {
		return curated.Errorf(InvalidTimer, int(id))
	}
	s.handlers[id] = h
	return nil
}

// Now returns the current virtual time.
func (s *Scheduler) Now() Time {
	return s.now
}

// Rearm sets the due time of the timer. A due time earlier than Now() is
// treated as Now() and the timer will fire on the next call to AdvanceTo(). A
// due time of Never disarms the timer.
//
// Invalid timer values are ignored.
func (s *Scheduler) Rearm(id Timer, at Time) {
	if id < 0 || id >= NumTimers {
		return
	}
	if at < s.now {
		at = s.now
	}
	s.due[id] = at
}

// Due returns the due time of the timer. Returns Never for disarmed timers and
// for invalid timer values.
func (s *Scheduler) Due(id Timer) Time {
	if id < 0 || id >= NumTimers {
		return Never
	}
	return s.due[id]
}

// Fired returns the number of times the timer has fired since the last reset.
func (s *Scheduler) Fired(id Timer) uint64 {
	if id < 0 || id >= NumTimers {
		return 0
	}
	return s.fired[id]
}

// Next returns the timer that will fire next. The second return value is
// false if no timers are armed.
func (s *Scheduler) Next() (Pending, bool) {
	next := Pending{Due: Never}
	ok := false
	for i, d := range s.due {
		if d < next.Due {
			next = Pending{Timer: Timer(i), Due: d}
			ok = true
		}
	}
	return next, ok
}

// Pending returns a list of every armed timer, in the order they will fire.
func (s *Scheduler) Pending() []Pending {
	var p []Pending
	for i, d := range s.due {
		if d != Never {
			p = append(p, Pending{Timer: Timer(i), Due: d})
		}
	}
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Due < p[j].Due
	})
	return p
}

// fire the next timer if it is due on or before the limit. returns false if
// no timer was fired
func (s *Scheduler) fire(limit Time) (bool, error) {
	next, ok := s.Next()
	if !ok || next.Due > limit {
		return false, nil
	}

	h := s.handlers[next.Timer]
	if h == nil {
		return false, curated.Errorf(NoHandler, next.Timer)
	}

	s.now = next.Due
	s.due[next.Timer] = Never
	s.fired[next.Timer]++

	s.firing = true
	defer func() {
		s.firing = false
	}()
	h.TimerFired(next.Timer)

	return true, nil
}

// AdvanceTo moves virtual time forward to the specified time, firing every
// timer that becomes due on the way. Timers rearmed by handlers during the
// advance will also fire if they fall within the limit.
func (s *Scheduler) AdvanceTo(t Time) error {
	if s.firing {
		return curated.Errorf(Reentrant, "AdvanceTo()")
	}
	if t < s.now {
		return curated.Errorf(TimeReversed, s.now, t)
	}

	for {
		ok, err := s.fire(t)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	s.now = t

	return nil
}

// AdvanceBy is a convenience function equivalent to AdvanceTo(Now() + d).
func (s *Scheduler) AdvanceBy(d Time) error {
	return s.AdvanceTo(s.now + d)
}

// Step fires the next armed timer, regardless of how far in the future it is
// due. Returns false if no timer is armed.
func (s *Scheduler) Step() (bool, error) {
	if s.firing {
		return false, curated.Errorf(Reentrant, "Step()")
	}
	return s.fire(Never - 1)
}

// Run fires timers one at a time, in order, calling continueCheck() after
// each one. Run returns when continueCheck() returns false or an error, or
// when there are no more timers armed. A nil continueCheck runs until no
// timers remain.
//
// Compared to AdvanceTo() virtual time is only ever moved to the due time of
// a timer that has fired.
func (s *Scheduler) Run(continueCheck func() (bool, error)) error {
	if s.firing {
		return curated.Errorf(Reentrant, "Run()")
	}
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		ok, err := s.fire(Never - 1)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
