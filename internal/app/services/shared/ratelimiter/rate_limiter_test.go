package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 30, 0, time.UTC)
	input := func() *ApplyResourceLimiterInput {
		return &ApplyResourceLimiterInput{
			ResourceName:      "Owner-1",
			LimiterGroupName:  "intake-submit",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		}
	}
	expectedKey := "INTAKE-SUBMIT:owner-1:28575960"

	t.Run("Within Quota Is Allowed", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(2, nil)

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		repo.AssertExpectations(t)
	})

	t.Run("Over Quota Reports Seconds To Next Window", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(3, nil)

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 31, out.RetryAfterSecs)
	})

	t.Run("Zero Quota Skips Redis", func(t *testing.T) {
		repo := new(MockRedisRepository)
		in := input()
		in.MaxQuota = 0

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, in)

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Resource Is Rejected", func(t *testing.T) {
		repo := new(MockRedisRepository)
		in := input()
		in.ResourceName = "  "

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, in)

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 60, out.RetryAfterSecs)
	})

	t.Run("Redis Failure Is Returned", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(0, errors.New("connection refused"))

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})
}
