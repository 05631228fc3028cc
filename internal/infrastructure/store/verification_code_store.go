package store

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
)

// CodeLength is the number of digits in a generated verification code.
const CodeLength = 6

// DefaultStaticCode is accepted when no code store is configured.
const DefaultStaticCode = "123456"

// RedisCodeStore keeps one pending code per user with a TTL. Issuing a new
// code replaces the previous one; a successful check consumes it.
type RedisCodeStore struct {
	rdb    *redis.Client
	random contract.IRandomGenerator
	ttl    time.Duration
}

var _ contract.IVerificationCodeIssuer = (*RedisCodeStore)(nil)

func NewRedisCodeStore(rdb *redis.Client, random contract.IRandomGenerator, ttl time.Duration) *RedisCodeStore {
	return &RedisCodeStore{rdb: rdb, random: random, ttl: ttl}
}

func verificationCodeKey(userID string) string { return fmt.Sprintf("verify:code:%s", userID) }

func (s *RedisCodeStore) Issue(ctx context.Context, userID string) (string, error) {
	code, err := s.random.GenerateNumericCode(CodeLength)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, verificationCodeKey(userID), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return code, nil
}

func (s *RedisCodeStore) Check(ctx context.Context, userID, candidate string) (bool, error) {
	key := verificationCodeKey(userID)
	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if !codesEqual(stored, candidate) {
		return false, nil
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// StaticCodeIssuer accepts one fixed code for every user.
type StaticCodeIssuer struct {
	code string
}

var _ contract.IVerificationCodeIssuer = (*StaticCodeIssuer)(nil)

func NewStaticCodeIssuer(code string) *StaticCodeIssuer {
	if code == "" {
		code = DefaultStaticCode
	}
	return &StaticCodeIssuer{code: code}
}

func (s *StaticCodeIssuer) Issue(ctx context.Context, userID string) (string, error) {
	return s.code, nil
}

func (s *StaticCodeIssuer) Check(ctx context.Context, userID, candidate string) (bool, error) {
	return codesEqual(s.code, candidate), nil
}

func codesEqual(expected, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1
}
