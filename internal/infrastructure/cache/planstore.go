// Package cache provides Redis-backed stores for transient state.
package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nexus/internal/domain/planner"
)

// ErrPlanNotFound is returned when a staged plan has expired or was already
// discarded.
var ErrPlanNotFound = errors.New("plan not found or expired")

// RedisPlanStore stages AI-generated sprint plans between the generate and
// confirm phases. Plans never touch the relational store until confirmed; a
// TTL cleans up abandoned drafts.
type RedisPlanStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{
		client: client,
		prefix: "planner:draft:",
		ttl:    ttl,
	}
}

// Put stages a draft plan and returns its generated ID.
func (s *RedisPlanStore) Put(ctx context.Context, plan *planner.Plan) (string, error) {
	id, err := newPlanID()
	if err != nil {
		return "", err
	}
	plan.ID = id

	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to stage plan in redis: %w", err)
	}

	return id, nil
}

// Get returns a staged plan without deleting it. Confirm reads the draft
// through here and discards it only after the sprint is committed, so a
// failed confirm leaves the draft available for retry.
func (s *RedisPlanStore) Get(ctx context.Context, planID string) (*planner.Plan, error) {
	if planID == "" {
		return nil, errors.New("plan ID cannot be empty")
	}

	data, err := s.client.Get(ctx, s.prefix+planID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan from redis: %w", err)
	}

	var plan planner.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &plan, nil
}

// Discard removes a staged plan, either abandoned by the user or already
// turned into a sprint.
func (s *RedisPlanStore) Discard(ctx context.Context, planID string) error {
	return s.client.Del(ctx, s.prefix+planID).Err()
}

func newPlanID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate plan ID: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
