// Package redisstore implementa el almacenamiento persistente de sesión
// sobre Redis. La sesión completa (token + usuario) vive bajo una única
// clave y se guarda y borra de forma atómica.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harasdev/haras-api/internal/application/session"
	"github.com/harasdev/haras-api/pkg/config"
)

var _ session.Store = (*SessionStore)(nil)

const sessionKey = "haras:session"

// SessionStore implementación de session.Store sobre Redis.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient construye el cliente Redis desde la configuración y verifica
// conectividad con un ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSessionStore construye el store. ttl cero significa sin expiración.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Load devuelve la sesión guardada, o (nil, nil) si no hay ninguna.
func (s *SessionStore) Load(ctx context.Context) (*session.Stored, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var stored session.Stored
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &stored, nil
}

// Save persiste token y usuario juntos bajo la clave única.
func (s *SessionStore) Save(ctx context.Context, stored session.Stored) error {
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear elimina la sesión guardada. No es error que no exista.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
