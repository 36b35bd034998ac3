package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPTTL is how long a one-time password stays valid after login.
const OTPTTL = 2 * time.Minute

var ErrOTPNotFound = errors.New("otp not found")

// OTPStore keeps one-time passwords keyed by e-mail with an expiry.
// Backed by Redis so that restarts and multiple instances see the same
// codes, instead of the process-wide map this replaced.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type redisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(addr string) OTPStore {
	return &redisOTPStore{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *redisOTPStore) key(email string) string { return "otp:" + email }

func (s *redisOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(email), code, ttl).Err()
}

func (s *redisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.key(email)).Result()
	if err == redis.Nil {
		return "", ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *redisOTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.key(email)).Err()
}

// GenerateOTP returns a 6-digit numeric code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
