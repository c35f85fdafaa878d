package step

// Step is one screen of the wizard. Steps are plain values and hold no
// reference to the record between calls.
type Step struct {
	Index  int // 1-based
	Title  string
	Fields []FieldSpec
}

// Validate checks every field the step owns against its rules. Each field is
// evaluated independently and reports at most one message.
func (s Step) Validate(v Values) Result {
	res := Result{Valid: true}
	for _, f := range s.Fields {
		var (
			msg string
			ok  bool
		)
		if f.Kind == KindCheck {
			msg, ok = f.checkBox(v.Checked(f.Name))
		} else {
			msg, ok = f.check(v.Get(f.Name))
		}
		if !ok {
			res.Valid = false
			res.Errors = append(res.Errors, FieldError{Field: f.Name, Message: msg})
		}
	}
	return res
}

// Defaults returns the values to show when the step is entered: whatever the
// record holds for each owned field, else an empty value.
func (s Step) Defaults(rec Record) Values {
	v := Values{
		Text:   make(map[Field]string, len(s.Fields)),
		Checks: make(map[Field]bool),
	}
	for _, f := range s.Fields {
		if f.Kind == KindCheck {
			v.Checks[f.Name] = false
			continue
		}
		v.Text[f.Name] = rec[f.Name]
	}
	return v
}

// Owns reports whether f belongs to this step.
func (s Step) Owns(f Field) bool {
	_, ok := s.Field(f)
	return ok
}

// Field returns the spec for f.
func (s Step) Field(f Field) (FieldSpec, bool) {
	for _, spec := range s.Fields {
		if spec.Name == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// Persisted extracts the owned, persisted fields of v as a record fragment.
// Gate fields such as the terms checkbox are dropped here, and so are fields
// the caller left out of v, so a partial save never blanks a stored value.
func (s Step) Persisted(v Values) Record {
	return s.persisted(v, false)
}

// Accepted is Persisted for a step that passed validation: every owned,
// persisted field is present in the fragment, "" where v leaves it out.
func (s Step) Accepted(v Values) Record {
	return s.persisted(v, true)
}

func (s Step) persisted(v Values, fill bool) Record {
	out := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Persist || f.Kind == KindCheck {
			continue
		}
		if val, ok := v.Text[f.Name]; ok || fill {
			out[f.Name] = val
		}
	}
	return out
}
