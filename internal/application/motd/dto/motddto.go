package dto

import "leaguemotd/internal/domain/motd"

// MOTDDTO is the caller-facing view of a MOTD. A nil URL means the MOTD has
// no link line; an empty one is a link line with nothing after the prefix.
type MOTDDTO struct {
	Message string  `json:"message" yaml:"message"`
	URL     *string `json:"url,omitempty" yaml:"url,omitempty"`
}

func ToMOTDDTO(m *motd.MOTD) MOTDDTO {
	d := MOTDDTO{Message: m.Message}
	if m.URL != nil {
		url := *m.URL
		d.URL = &url
	}
	return d
}

func ToMOTDDTOList(motds []*motd.MOTD) []MOTDDTO {
	out := make([]MOTDDTO, 0, len(motds))
	for _, m := range motds {
		out = append(out, ToMOTDDTO(m))
	}
	return out
}

// ToDomain rebuilds the exact record, keeping an empty URL distinct from none.
func (d MOTDDTO) ToDomain() *motd.MOTD {
	m := &motd.MOTD{Message: d.Message}
	if d.URL != nil {
		url := *d.URL
		m.URL = &url
	}
	return m
}
