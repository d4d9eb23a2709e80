package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/constants"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils/logutil"
)

const motdKeyPrefix = "league:motd:"

// MOTDCollectionKey returns the Redis set key holding the MOTDs of lang.
// The language code is not validated here.
func MOTDCollectionKey(lang string) string {
	return motdKeyPrefix + lang
}

// RedisMOTDStore keeps each language's MOTDs in a Redis set of encoded texts.
type RedisMOTDStore struct {
	client    redis.Cmdable
	transport TextTransport
	logger    logger.Interface
}

var _ motd.Repository = (*RedisMOTDStore)(nil)

// NewRedisMOTDStore creates a store on top of an existing client.
func NewRedisMOTDStore(client redis.Cmdable, transport TextTransport, logger logger.Interface) *RedisMOTDStore {
	return &RedisMOTDStore{
		client:    client,
		transport: transport,
		logger:    logger,
	}
}

// List returns every well-formed MOTD of lang in the order Redis yields them.
// Members that do not parse are skipped.
func (s *RedisMOTDStore) List(ctx context.Context, lang string) ([]*motd.MOTD, error) {
	key := MOTDCollectionKey(lang)

	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, &motd.StoreError{Op: "list", Key: key, Err: err}
	}

	motds := make([]*motd.MOTD, 0, len(members))
	for _, member := range members {
		m, err := motd.Parse(s.transport.Decode([]byte(member)))
		if err != nil {
			var parseErr *motd.ParseError
			if errors.As(err, &parseErr) {
				s.logger.Debugw("skipping malformed motd",
					"key", key,
					"raw", logutil.TruncateForLog(parseErr.Raw, constants.MaxLoggedMOTDLength))
			}
			continue
		}
		motds = append(motds, m)
	}

	return motds, nil
}

// Add inserts m into the set of lang. Adding an existing MOTD is a no-op.
func (s *RedisMOTDStore) Add(ctx context.Context, lang string, m *motd.MOTD) error {
	key := MOTDCollectionKey(lang)
	if err := s.client.SAdd(ctx, key, s.transport.Encode(m.String())).Err(); err != nil {
		return &motd.StoreError{Op: "add", Key: key, Err: err}
	}
	return nil
}

// Remove deletes the member equal to m's encoded form. Removing a missing
// MOTD is a no-op.
func (s *RedisMOTDStore) Remove(ctx context.Context, lang string, m *motd.MOTD) error {
	key := MOTDCollectionKey(lang)
	if err := s.client.SRem(ctx, key, s.transport.Encode(m.String())).Err(); err != nil {
		return &motd.StoreError{Op: "remove", Key: key, Err: err}
	}
	return nil
}
