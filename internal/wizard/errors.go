package wizard

import "errors"

// Transition errors. Validation failures are not errors; they come back as
// a step.Result with Valid == false.
var (
	// ErrInvalidTransition is returned for actions the current state does
	// not offer, such as Back on the first step or Next on the last.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrStepMismatch is returned when an action names a step other than
	// the current one.
	ErrStepMismatch = errors.New("step is not the current step")

	// ErrUnknownStep is returned for step indexes outside the wizard.
	ErrUnknownStep = errors.New("unknown step")

	// ErrReviewOpen is returned for step actions while the review is shown.
	ErrReviewOpen = errors.New("review is open")

	// ErrReviewClosed is returned for review actions while it is hidden.
	ErrReviewClosed = errors.New("review is not open")

	// ErrNothingToSubmit is returned by ConfirmSubmit after completion.
	ErrNothingToSubmit = errors.New("nothing to submit")
)
