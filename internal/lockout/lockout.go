package lockout

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	maxAttempts = 5
	window      = 15 * time.Minute
)

// Guard limita los intentos de login del panel: tras maxAttempts fallos
// la cuenta queda bloqueada hasta que expira la ventana. El contador vive
// en Redis; si Redis no responde, el login sigue funcionando (el bloqueo
// es una defensa, no un punto único de fallo).
type Guard struct {
	rdb *redis.Client
}

func NewGuard(rdb *redis.Client) *Guard {
	return &Guard{rdb: rdb}
}

func key(email string) string {
	return "login:attempts:" + email
}

func (g *Guard) Allowed(ctx context.Context, email string) bool {
	attempts, err := g.rdb.Get(ctx, key(email)).Int()
	if err != nil {
		return true
	}
	return attempts < maxAttempts
}

func (g *Guard) RegisterFailure(ctx context.Context, email string) {
	pipe := g.rdb.TxPipeline()
	pipe.Incr(ctx, key(email))
	pipe.Expire(ctx, key(email), window)
	_, _ = pipe.Exec(ctx)
}

func (g *Guard) Reset(ctx context.Context, email string) {
	_ = g.rdb.Del(ctx, key(email)).Err()
}
