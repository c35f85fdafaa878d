package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/onboardr/internal/step"
	"gopkg.in/yaml.v3"
)

// Format selects how a record is encoded for review and output.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown review format %q", s)
	}
}

const secretMask = "********"

// document fixes the key order of an encoded record. Nil fields were never
// set and are left out.
type document struct {
	EmailID     *string `json:"emailId,omitempty" yaml:"emailId,omitempty"`
	Password    *string `json:"password,omitempty" yaml:"password,omitempty"`
	FirstName   *string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Address     *string `json:"address,omitempty" yaml:"address,omitempty"`
	CountryCode *string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
}

func newDocument(rec step.Record, maskSecrets bool) document {
	get := func(f step.Field) *string {
		v, ok := rec.Get(f)
		if !ok {
			return nil
		}
		if maskSecrets && f == step.Password {
			v = secretMask
		}
		return &v
	}
	return document{
		EmailID:     get(step.EmailID),
		Password:    get(step.Password),
		FirstName:   get(step.FirstName),
		LastName:    get(step.LastName),
		Address:     get(step.Address),
		CountryCode: get(step.CountryCode),
		PhoneNumber: get(step.PhoneNumber),
	}
}

// Encode renders rec in the given format. maskSecrets replaces the password.
func Encode(rec step.Record, format Format, maskSecrets bool) ([]byte, error) {
	doc := newDocument(rec, maskSecrets)
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding record as yaml: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding record as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown review format %q", format)
	}
}
