package motd

import "context"

// Repository stores the MOTD collection of each language.
type Repository interface {
	List(ctx context.Context, lang string) ([]*MOTD, error)
	Add(ctx context.Context, lang string, m *MOTD) error
	Remove(ctx context.Context, lang string, m *MOTD) error
}
