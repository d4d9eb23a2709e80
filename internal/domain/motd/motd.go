// Package motd defines the message-of-the-day record and its text encoding.
package motd

import (
	"fmt"
	"strings"
)

// URLPrefix marks the optional second line of an encoded MOTD.
const URLPrefix = "MOTDURL="

// MOTD is a single announcement. It has no identity beyond its encoded text.
type MOTD struct {
	Message string
	URL     *string
}

// NewMOTD builds a MOTD; an empty url means no link.
func NewMOTD(message, url string) *MOTD {
	m := &MOTD{Message: message}
	if url != "" {
		m.URL = &url
	}
	return m
}

func (m *MOTD) HasURL() bool {
	return m.URL != nil
}

// Equal compares by encoded form.
func (m *MOTD) Equal(other *MOTD) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}

// String returns the canonical wire form.
func (m *MOTD) String() string {
	if m.URL == nil {
		return m.Message
	}
	return m.Message + "\n" + URLPrefix + *m.URL
}

// ParseError reports text that is not a valid encoded MOTD.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed motd: %q", e.Raw)
}

// Parse decodes the wire form produced by String. The input is used verbatim.
func Parse(s string) (*MOTD, error) {
	parts := strings.Split(s, "\n")
	switch len(parts) {
	case 1:
		return &MOTD{Message: parts[0]}, nil
	case 2:
		url, ok := strings.CutPrefix(parts[1], URLPrefix)
		if !ok {
			return nil, &ParseError{Raw: s}
		}
		return &MOTD{Message: parts[0], URL: &url}, nil
	default:
		return nil, &ParseError{Raw: s}
	}
}
