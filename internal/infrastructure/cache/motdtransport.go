package cache

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	CharsetWindows1252 = "windows-1252"
	CharsetUTF8        = "utf-8"
)

// TextTransport converts MOTD text to and from the bytes stored in Redis.
type TextTransport interface {
	Encode(s string) []byte
	Decode(b []byte) string
}

// NewTextTransport returns the transport for charset. An empty charset
// selects Windows-1252, which is what existing league data is stored in.
func NewTextTransport(charset string) (TextTransport, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetWindows1252, "cp1252":
		return newCharmapTransport(charmap.Windows1252), nil
	case CharsetUTF8, "utf8":
		return utf8Transport{}, nil
	default:
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
}

type utf8Transport struct{}

func (utf8Transport) Encode(s string) []byte { return []byte(s) }

func (utf8Transport) Decode(b []byte) string { return string(b) }

// charmapTransport replaces characters the charmap cannot represent instead
// of failing, so Encode and Decode stay total.
type charmapTransport struct {
	cm *charmap.Charmap
}

func newCharmapTransport(cm *charmap.Charmap) *charmapTransport {
	return &charmapTransport{cm: cm}
}

func (t *charmapTransport) Encode(s string) []byte {
	out, err := encoding.ReplaceUnsupported(t.cm.NewEncoder()).String(s)
	if err != nil {
		return []byte(s)
	}
	return []byte(out)
}

func (t *charmapTransport) Decode(b []byte) string {
	out, err := t.cm.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
