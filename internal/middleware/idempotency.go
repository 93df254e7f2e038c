package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

// Headers used by the idempotency middleware.
const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotency-Replayed"
)

const (
	idempotencyLockTTL   = 10 * time.Second
	idempotencyResultTTL = 24 * time.Hour
	idempotencyPending   = "PROCESSING"
)

// ErrIdempotencyMiss is returned by IdempotencyStore.Get when no entry exists.
var ErrIdempotencyMiss = errors.New("idempotency key not found")

// IdempotencyStore is the key/value subset the idempotency middleware needs.
type IdempotencyStore interface {
	// SetNX stores value only if key is absent and reports whether it did.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// storedResponse is what gets replayed for a repeated key.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// NewIdempotency returns a middleware that makes POST, PUT and PATCH requests
// carrying an Idempotency-Key header safe to retry. The first request with a
// key runs normally and its response is stored; later requests with the same
// key get the stored response back. A repeat that arrives while the first is
// still running gets 409. Keys are scoped by user, method and path.
//
// Store failures are logged and the request is served without idempotency.
func NewIdempotency(store IdempotencyStore, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
				next.ServeHTTP(w, r)
				return
			}
			key := r.Header.Get(IdempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			storeKey := idempotencyKey(r, key)

			val, err := store.Get(ctx, storeKey)
			switch {
			case err == nil && val == idempotencyPending:
				writeError(w, http.StatusConflict, "conflict", "a request with this idempotency key is in progress")
				return
			case err == nil:
				if replay(w, val) {
					return
				}
				log.WarnContext(ctx, "discarding unreadable idempotency entry", "key", storeKey)
				_ = store.Del(ctx, storeKey)
			case !errors.Is(err, ErrIdempotencyMiss):
				log.ErrorContext(ctx, "idempotency store get", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			acquired, err := store.SetNX(ctx, storeKey, idempotencyPending, idempotencyLockTTL)
			if err != nil {
				log.ErrorContext(ctx, "idempotency store lock", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !acquired {
				writeError(w, http.StatusConflict, "conflict", "a request with this idempotency key is in progress")
				return
			}

			var buf bytes.Buffer
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&buf)

			next.ServeHTTP(ww, r)

			// The request context may already be cancelled once the response is written.
			saveCtx := context.WithoutCancel(ctx)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				_ = store.Del(saveCtx, storeKey)
				return
			}
			data, err := json.Marshal(storedResponse{
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        buf.Bytes(),
			})
			if err == nil {
				err = store.Set(saveCtx, storeKey, string(data), idempotencyResultTTL)
			}
			if err != nil {
				log.ErrorContext(ctx, "idempotency store save", "error", err)
				_ = store.Del(saveCtx, storeKey)
			}
		})
	}
}

func idempotencyKey(r *http.Request, key string) string {
	user := "anonymous"
	if id, ok := UserID(r.Context()); ok {
		user = id.String()
	}
	return "idempotency:" + user + ":" + r.Method + ":" + r.URL.Path + ":" + key
}

func replay(w http.ResponseWriter, val string) bool {
	var resp storedResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil || resp.Status == 0 {
		return false
	}
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set(IdempotencyReplayedHeader, "true")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
	return true
}

// RedisIdempotencyStore adapts a go-redis client to IdempotencyStore.
type RedisIdempotencyStore struct {
	client redis.Cmdable
}

// NewRedisIdempotencyStore wraps client.
func NewRedisIdempotencyStore(client redis.Cmdable) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func (s *RedisIdempotencyStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, value, ttl).Result()
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrIdempotencyMiss
	}
	return val, err
}

func (s *RedisIdempotencyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisIdempotencyStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
