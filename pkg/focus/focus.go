// Package focus runs the in-memory focus and cooldown cycle: the player
// starts working on a task, a timer counts down, and on expiry the player
// is asked whether the task got done. Focus state is never persisted; a
// restart always comes up idle.
package focus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pxgdaily/pkg/session"
	"pxgdaily/pkg/tracker"
)

// DefaultDuration is how long a focus cycle runs before prompting.
const DefaultDuration = time.Hour

// State is the focus lifecycle position of one task.
type State int

const (
	// Idle means no focus cycle is running for the task.
	Idle State = iota
	// InProgress means the timer is counting down.
	InProgress
	// PromptPending means the timer expired and the cycle is waiting for
	// the player to answer the completion prompt.
	PromptPending
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case PromptPending:
		return "prompt-pending"
	default:
		return "idle"
	}
}

// ErrTaskDone is returned when a focus cycle is requested for a task that
// is already completed for its current period.
var ErrTaskDone = errors.New("focus: task is already done")

// Prompt identifies the task whose focus timer expired.
type Prompt struct {
	CharacterID string
	TaskID      string
	Title       string
}

type cycle struct {
	state    State
	timer    *time.Timer
	deadline time.Time
}

// Controller tracks at most one focus cycle per task. All state lives in
// memory; the only persisted side effects are the doingForKey marker on
// start and whatever the prompt resolution does to the task.
type Controller struct {
	mu       sync.Mutex
	s        *session.Session
	duration time.Duration
	cycles   map[string]*cycle
	onPrompt func(Prompt)
}

// New creates a controller over the session. A non-positive duration falls
// back to DefaultDuration.
func New(s *session.Session, duration time.Duration) *Controller {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Controller{
		s:        s,
		duration: duration,
		cycles:   make(map[string]*cycle),
	}
}

// OnPrompt registers the callback invoked when a focus timer expires on a
// task that is still open. The callback runs outside the controller lock.
func (c *Controller) OnPrompt(fn func(Prompt)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPrompt = fn
}

// State returns the focus state for the task.
func (c *Controller) State(characterID, taskID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cy, ok := c.cycles[key(characterID, taskID)]; ok {
		return cy.state
	}
	return Idle
}

// Remaining returns how much of the focus window is left, or zero when no
// timer is running for the task.
func (c *Controller) Remaining(characterID, taskID string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	cy, ok := c.cycles[key(characterID, taskID)]
	if !ok || cy.state != InProgress {
		return 0
	}
	left := time.Until(cy.deadline)
	if left < 0 {
		return 0
	}
	return left
}

// Start begins a focus cycle: the task is marked in progress for its
// current period and the countdown begins. Starting a cycle that is
// already running is a no-op, and a completed task cannot be focused.
func (c *Controller) Start(characterID, taskID string) error {
	db := c.s.DB()
	if db == nil {
		return session.ErrNoProfile
	}
	_, task := db.Task(characterID, taskID)
	if task == nil {
		return fmt.Errorf("focus: no task %q on character %q", taskID, characterID)
	}
	now := c.s.Now()
	if task.IsDone(now) {
		return ErrTaskDone
	}

	c.mu.Lock()
	if cy, ok := c.cycles[key(characterID, taskID)]; ok && cy.state != Idle {
		c.mu.Unlock()
		return nil
	}
	cy := &cycle{state: InProgress, deadline: now.Add(c.duration)}
	cy.timer = time.AfterFunc(c.duration, func() {
		c.expire(characterID, taskID)
	})
	c.cycles[key(characterID, taskID)] = cy
	c.mu.Unlock()

	if err := c.s.Update(func(db *tracker.Database) {
		if _, task := db.Task(characterID, taskID); task != nil {
			task.DoingForKey = task.Period.Key(now)
		}
	}); err != nil {
		// The marker never hit disk, so the cycle must not run either.
		c.Cancel(characterID, taskID)
		return err
	}
	return nil
}

// Resolve answers the completion prompt. Done toggles the task complete;
// not done clears the in-progress marker and leaves completion state
// untouched. Resolving a cycle that is not waiting on a prompt is a no-op.
func (c *Controller) Resolve(characterID, taskID string, done bool) error {
	c.mu.Lock()
	cy, ok := c.cycles[key(characterID, taskID)]
	if !ok || cy.state != PromptPending {
		c.mu.Unlock()
		return nil
	}
	delete(c.cycles, key(characterID, taskID))
	c.mu.Unlock()

	rules := c.s.Rules()
	return c.s.Update(func(db *tracker.Database) {
		_, task := db.Task(characterID, taskID)
		if task == nil {
			return
		}
		if done {
			if !task.IsDone(c.s.Now()) {
				task.Toggle(rules, c.s.Now())
			}
			return
		}
		task.DoingForKey = ""
	})
}

// Cancel tears down any running cycle for the task without touching the
// snapshot. Callers invoke it when the task is toggled, archived, or
// deleted through another path; those operations clear the in-progress
// marker themselves.
func (c *Controller) Cancel(characterID, taskID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drop(key(characterID, taskID))
}

// Close stops every running timer. Pending prompts are abandoned.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.cycles {
		c.drop(k)
	}
}

// expire runs when the countdown finishes. A task that was completed or
// removed while the timer ran cancels silently, clearing its stale
// in-progress marker; otherwise the cycle moves to PromptPending and the
// prompt callback fires.
func (c *Controller) expire(characterID, taskID string) {
	c.mu.Lock()
	cy, ok := c.cycles[key(characterID, taskID)]
	if !ok || cy.state != InProgress {
		c.mu.Unlock()
		return
	}

	db := c.s.DB()
	var task *tracker.Task
	if db != nil {
		_, task = db.Task(characterID, taskID)
	}
	if task == nil || task.IsDone(c.s.Now()) {
		c.drop(key(characterID, taskID))
		c.mu.Unlock()
		if task != nil && task.DoingForKey != "" {
			_ = c.s.Update(func(db *tracker.Database) {
				if _, t := db.Task(characterID, taskID); t != nil {
					t.DoingForKey = ""
				}
			})
		}
		return
	}

	cy.state = PromptPending
	notify := c.onPrompt
	title := task.Title
	c.mu.Unlock()

	if notify != nil {
		notify(Prompt{CharacterID: characterID, TaskID: taskID, Title: title})
	}
}

// drop removes a cycle and stops its timer. Callers hold the lock.
func (c *Controller) drop(k string) {
	if cy, ok := c.cycles[k]; ok {
		if cy.timer != nil {
			cy.timer.Stop()
		}
		delete(c.cycles, k)
	}
}

func key(characterID, taskID string) string {
	return characterID + "/" + taskID
}
