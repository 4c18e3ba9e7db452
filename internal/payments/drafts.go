package payments

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// DraftTTL limita cuánto puede tardar el cliente en completar el pago.
// Pasado el plazo el borrador desaparece y no queda reserva parcial.
const DraftTTL = time.Hour

var ErrDraftNotFound = errors.New("pending draft not found")

// DraftStore guarda borradores de reserva pendientes de pago, con clave
// el id de correlación de la pasarela. La reserva real solo se ensambla
// tras el callback de éxito.
type DraftStore struct {
	rdb *redis.Client
}

func NewDraftStore(rdb *redis.Client) *DraftStore {
	return &DraftStore{rdb: rdb}
}

func draftKey(ref string) string {
	return "payments:draft:" + ref
}

func (s *DraftStore) Save(ctx context.Context, ref string, draft any) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(ref), payload, DraftTTL).Err()
}

func (s *DraftStore) Load(ctx context.Context, ref string, out any) error {
	payload, err := s.rdb.Get(ctx, draftKey(ref)).Bytes()
	if err == redis.Nil {
		return ErrDraftNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (s *DraftStore) Delete(ctx context.Context, ref string) error {
	return s.rdb.Del(ctx, draftKey(ref)).Err()
}
