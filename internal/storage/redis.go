package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

// SessionStore keeps login sessions in Redis, token -> user snapshot.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) SessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Save(ctx context.Context, token string, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.SessionKey(token), payload, s.TTL).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	payload, err := s.Client.Get(ctx, s.SessionKey(token)).Bytes()
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.SessionKey(token)).Err()
}

// PopularityStore tracks how often each menu item gets ordered, in
// daily and all-time sorted sets.
type PopularityStore struct {
	Client *redis.Client
}

func NewPopularityStore(client *redis.Client) *PopularityStore {
	return &PopularityStore{Client: client}
}

func dailyKey(day time.Time) string {
	return "popularity:daily:" + day.Format("2006-01-02")
}

const allTimeKey = "popularity:alltime"

func (p *PopularityStore) RecordOrder(ctx context.Context, menuID int, at time.Time) error {
	member := strconv.Itoa(menuID)
	key := dailyKey(at)
	if err := p.Client.ZIncrBy(ctx, key, 1, member).Err(); err != nil {
		return err
	}
	p.Client.Expire(ctx, key, 7*24*time.Hour)
	return p.Client.ZIncrBy(ctx, allTimeKey, 1, member).Err()
}

// Top returns up to limit (menuID, score) pairs for the given day's
// leaderboard, best first. An empty day falls back to the all-time set.
func (p *PopularityStore) Top(ctx context.Context, day time.Time, limit int) (map[int]float64, error) {
	members, err := p.Client.ZRevRangeWithScores(ctx, dailyKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		members, err = p.Client.ZRevRangeWithScores(ctx, allTimeKey, 0, int64(limit-1)).Result()
		if err != nil {
			return nil, err
		}
	}

	scores := make(map[int]float64, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		scores[id] = member.Score
	}
	return scores, nil
}
