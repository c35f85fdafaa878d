// Package wizard is the state machine behind the sign-up flow. It owns the
// current step and the accumulated record; every change to either goes
// through one of the Controller's transition methods.
package wizard

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/review"
	"github.com/mark3labs/onboardr/internal/step"
)

// State is a read-only snapshot of the wizard.
type State struct {
	CurrentStep   int         // 1-based; len(steps)+1 once complete
	Record        step.Record // Everything saved so far
	ReviewVisible bool
	Complete      bool
}

// Actions reports which user actions the current state accepts.
type Actions struct {
	Back     bool
	Save     bool
	Next     bool
	Complete bool
	Confirm  bool
	Dismiss  bool
}

// Controller drives the wizard. It is not safe for concurrent use; the
// presentation layer dispatches one action at a time.
type Controller struct {
	id        string
	steps     []step.Step
	presenter *review.Presenter
	log       *logger.Logger

	state   State
	touched map[step.Field]bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Lines are tagged with the session id.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(c *Controller) { c.id = id }
}

// New creates a controller on step 1 with an empty record. Nil steps use
// step.Steps with the default country codes; a nil presenter discards the
// submitted record.
func New(steps []step.Step, presenter *review.Presenter, opts ...Option) *Controller {
	if len(steps) == 0 {
		steps = step.Steps(nil)
	}
	if presenter == nil {
		presenter = review.New(nil)
	}
	c := &Controller{
		id:        uuid.NewString(),
		steps:     steps,
		presenter: presenter,
		log:       logger.Default,
		state: State{
			CurrentStep: 1,
			Record:      step.Record{},
		},
		touched: make(map[step.Field]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("session=" + c.id)
	c.log.Debug("wizard started with %d steps", len(c.steps))
	return c
}

// ID returns the session id.
func (c *Controller) ID() string {
	return c.id
}

// Steps returns the wizard's steps in order.
func (c *Controller) Steps() []step.Step {
	return c.steps
}

// Presenter returns the review presenter.
func (c *Controller) Presenter() *review.Presenter {
	return c.presenter
}

// State returns a snapshot; mutating it does not affect the controller.
func (c *Controller) State() State {
	s := c.state
	s.Record = c.state.Record.Clone()
	return s
}

// Current returns the step being shown. ok is false once complete.
func (c *Controller) Current() (s step.Step, ok bool) {
	if c.state.Complete {
		return step.Step{}, false
	}
	return c.steps[c.state.CurrentStep-1], true
}

func (c *Controller) last() int {
	return len(c.steps)
}

// Actions returns the actions available right now.
func (c *Controller) Actions() Actions {
	switch {
	case c.state.Complete:
		return Actions{}
	case c.state.ReviewVisible:
		return Actions{Confirm: true, Dismiss: true}
	}
	cur := c.state.CurrentStep
	return Actions{
		Back:     cur > 1,
		Save:     true,
		Next:     cur < c.last(),
		Complete: cur == c.last(),
	}
}

// DefaultsFor returns the values step index should show, taken from the
// record where set.
func (c *Controller) DefaultsFor(index int) (step.Values, error) {
	if index < 1 || index > c.last() {
		return step.Values{}, fmt.Errorf("defaults for step %d: %w", index, ErrUnknownStep)
	}
	return c.steps[index-1].Defaults(c.state.Record), nil
}

// SaveOnly merges values into the record without any validity gate and
// stays on the step. Fields left out of values keep their stored value. The
// returned result is informational.
func (c *Controller) SaveOnly(index int, values step.Values) (step.Result, error) {
	s, err := c.stepFor("save", index)
	if err != nil {
		return step.Result{}, err
	}

	c.state.Record = c.state.Record.Merge(s.Persisted(values))
	c.log.Debug("save: step %d (%d fields in record)", index, c.state.Record.Len())
	return s.Validate(values), nil
}

// Next validates values and, when they pass, merges them and moves to the
// following step. Every field the step owns is written, so one left out of
// values is stored as "". On failure nothing is merged and the step is
// unchanged.
func (c *Controller) Next(index int, values step.Values) (step.Result, error) {
	s, err := c.stepFor("next", index)
	if err != nil {
		return step.Result{}, err
	}
	if index == c.last() {
		c.log.Warn("next: rejected on last step %d", index)
		return step.Result{}, fmt.Errorf("next on last step %d: %w", index, ErrInvalidTransition)
	}

	res := s.Validate(values)
	if !res.Valid {
		c.touchAll(s)
		c.log.Info("next: step %d blocked by %d field errors", index, len(res.Errors))
		return res, nil
	}

	c.state.Record = c.state.Record.Merge(s.Accepted(values))
	c.state.CurrentStep++
	c.resetTouched()
	c.log.Debug("next: step %d -> %d", index, c.state.CurrentStep)
	return res, nil
}

// Back returns to the previous step. The record is left untouched.
func (c *Controller) Back() (State, error) {
	switch {
	case c.state.ReviewVisible:
		return c.State(), fmt.Errorf("back: %w", ErrReviewOpen)
	case c.state.Complete:
		return c.State(), fmt.Errorf("back after completion: %w", ErrInvalidTransition)
	case c.state.CurrentStep <= 1:
		c.log.Warn("back: rejected on first step")
		return c.State(), fmt.Errorf("back from step 1: %w", ErrInvalidTransition)
	}

	c.state.CurrentStep--
	c.resetTouched()
	c.log.Debug("back: step %d -> %d", c.state.CurrentStep+1, c.state.CurrentStep)
	return c.State(), nil
}

// Complete validates the last step. When it passes, the persisted fields
// are merged (the terms gate is dropped) and the review opens.
func (c *Controller) Complete(values step.Values) (step.Result, error) {
	s, err := c.stepFor("complete", c.last())
	if err != nil {
		return step.Result{}, err
	}

	res := s.Validate(values)
	if !res.Valid {
		c.touchAll(s)
		c.log.Info("complete: blocked by %d field errors", len(res.Errors))
		return res, nil
	}

	c.state.Record = c.state.Record.Merge(s.Accepted(values))
	c.state.ReviewVisible = true
	c.resetTouched()
	c.log.Debug("complete: review opened (%d fields)", c.state.Record.Len())
	return res, nil
}

// ConfirmSubmit hands the record to the review sink, closes the review and
// ends the wizard. If the sink fails the review stays open.
func (c *Controller) ConfirmSubmit() (State, error) {
	switch {
	case c.state.Complete:
		return c.State(), fmt.Errorf("confirm: %w", ErrNothingToSubmit)
	case !c.state.ReviewVisible:
		return c.State(), fmt.Errorf("confirm: %w", ErrReviewClosed)
	}

	if err := c.presenter.Confirm(c.state.Record); err != nil {
		c.log.Error("confirm: %v", err)
		return c.State(), fmt.Errorf("confirm: %w", err)
	}

	c.state.ReviewVisible = false
	c.state.Complete = true
	c.state.CurrentStep = c.last() + 1
	c.log.Info("confirm: record submitted")
	return c.State(), nil
}

// Dismiss closes the review and returns to the last step unchanged.
func (c *Controller) Dismiss() (State, error) {
	if !c.state.ReviewVisible {
		return c.State(), fmt.Errorf("dismiss: %w", ErrReviewClosed)
	}
	c.state.ReviewVisible = false
	c.log.Debug("dismiss: back to step %d", c.state.CurrentStep)
	return c.State(), nil
}

// stepFor checks that a step action on index is allowed now.
func (c *Controller) stepFor(op string, index int) (step.Step, error) {
	switch {
	case c.state.ReviewVisible:
		return step.Step{}, fmt.Errorf("%s: %w", op, ErrReviewOpen)
	case c.state.Complete:
		return step.Step{}, fmt.Errorf("%s after completion: %w", op, ErrInvalidTransition)
	case index < 1 || index > c.last():
		return step.Step{}, fmt.Errorf("%s step %d: %w", op, index, ErrUnknownStep)
	case index != c.state.CurrentStep:
		return step.Step{}, fmt.Errorf("%s step %d while on %d: %w", op, index, c.state.CurrentStep, ErrStepMismatch)
	}
	return c.steps[index-1], nil
}
