package wizard

import "github.com/mark3labs/onboardr/internal/step"

// Touch marks f as visited so its errors become visible.
func (c *Controller) Touch(f step.Field) {
	c.touched[f] = true
}

// Touched reports whether f has been visited on the current step.
func (c *Controller) Touched(f step.Field) bool {
	return c.touched[f]
}

// VisibleErrors filters res down to the fields the user has touched. A
// rejected Next or Complete touches every field of the step.
func (c *Controller) VisibleErrors(res step.Result) []step.FieldError {
	var out []step.FieldError
	for _, e := range res.Errors {
		if c.touched[e.Field] {
			out = append(out, e)
		}
	}
	return out
}

func (c *Controller) touchAll(s step.Step) {
	for _, f := range s.Fields {
		c.touched[f.Name] = true
	}
}

func (c *Controller) resetTouched() {
	clear(c.touched)
}
