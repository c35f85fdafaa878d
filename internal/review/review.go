// Package review turns the finished record into something a user can
// confirm, and hands the confirmed record to a sink exactly once.
package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/onboardr/internal/step"
	"github.com/nyaruka/phonenumbers"
)

// Title is the heading of the review screen.
const Title = "Review your Details"

// ConfirmLabel is the label of the single review action.
const ConfirmLabel = "Confirm and Submit"

// ErrAlreadySubmitted is returned by Confirm once the record has been
// delivered.
var ErrAlreadySubmitted = errors.New("record already submitted")

// Line is one label/value row of the summary.
type Line struct {
	Field step.Field
	Label string
	Value string
}

// Presenter formats records for confirmation and delivers the confirmed
// record to its sink.
type Presenter struct {
	sink        Sink
	format      Format
	maskSecrets bool
	labels      map[step.Field]string
	submitted   bool
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithFormat sets the encoding used by Render.
func WithFormat(f Format) Option {
	return func(p *Presenter) { p.format = f }
}

// WithMaskedSecrets hides the password in Summary and Render. The sink still
// receives the real value.
func WithMaskedSecrets() Option {
	return func(p *Presenter) { p.maskSecrets = true }
}

// New creates a presenter delivering to sink. A nil sink discards.
func New(sink Sink, opts ...Option) *Presenter {
	p := &Presenter{
		sink:   sink,
		format: FormatJSON,
		labels: fieldLabels(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func fieldLabels() map[step.Field]string {
	labels := make(map[step.Field]string)
	for _, s := range step.Steps(nil) {
		for _, f := range s.Fields {
			labels[f.Name] = f.Label
		}
	}
	return labels
}

// Summary lists every set field of rec in display order, whichever step
// is current.
func (p *Presenter) Summary(rec step.Record) []Line {
	entries := rec.Entries()
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		switch e.Field {
		case step.Password:
			if p.maskSecrets {
				value = secretMask
			}
		case step.PhoneNumber:
			code, _ := rec.Get(step.CountryCode)
			value = FormatPhone(code, e.Value)
		}
		lines = append(lines, Line{Field: e.Field, Label: p.labels[e.Field], Value: value})
	}
	return lines
}

// Render returns the review document for rec.
func (p *Presenter) Render(rec step.Record) (string, error) {
	data, err := Encode(rec, p.format, p.maskSecrets)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Confirm delivers a snapshot of rec to the sink. It succeeds at most once;
// a failed delivery may be retried.
func (p *Presenter) Confirm(rec step.Record) error {
	if p.submitted {
		return ErrAlreadySubmitted
	}
	if p.sink != nil {
		if err := p.sink.Submit(rec.Clone()); err != nil {
			return fmt.Errorf("delivering record: %w", err)
		}
	}
	p.submitted = true
	return nil
}

// Submitted reports whether Confirm has succeeded.
func (p *Presenter) Submitted() bool {
	return p.submitted
}

// FormatPhone renders a number with its dialing code in international
// format, falling back to "code number" when it cannot be parsed.
func FormatPhone(code, number string) string {
	if number == "" {
		return code
	}
	num, err := phonenumbers.Parse(code+number, "")
	if err != nil {
		return strings.TrimSpace(code + " " + number)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
