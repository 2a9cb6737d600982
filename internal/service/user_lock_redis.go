package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisUnlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

// redisUserLocker serializa por username entre instancias usando SET NX con
// TTL y liberación comparada por token. El TTL evita locks huérfanos si un
// proceso muere con el lock tomado.
type redisUserLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	prefix string
}

func NewRedisUserLocker(client *redis.Client, ttl time.Duration) UserLocker {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &redisUserLocker{
		client: client,
		ttl:    ttl,
		retry:  100 * time.Millisecond,
		prefix: "avatar:lock:",
	}
}

func (l *redisUserLocker) Acquire(ctx context.Context, username string) (func(), error) {
	key := l.prefix + username
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		l.client.Eval(releaseCtx, redisUnlockScript, []string{key}, token)
	}
	return release, nil
}
