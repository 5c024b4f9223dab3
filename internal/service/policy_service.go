package service

import (
	"context"
	"errors"
	"sync"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

// PolicyService holds the process-wide health policy: an in-memory
// snapshot backed by the singleton database row. Readers always get a
// complete value copy, either the old policy or the new one, never a
// half-updated record.
type PolicyService interface {
	// Snapshot returns the current policy by value.
	Snapshot() model.HealthPolicy
	// Update applies a partial threshold update atomically: the whole
	// policy is read, patched, validated, persisted, then swapped in.
	Update(ctx context.Context, patch model.HealthPolicyPatch) (model.HealthPolicy, error)
}

type policyService struct {
	repo repository.PolicyRepository

	mu      sync.RWMutex
	current model.HealthPolicy
}

// NewPolicyService loads the stored policy, seeding the defaults on first
// run. A stored policy that fails validation aborts startup: a missing
// threshold silently disabling an alert is a configuration error.
func NewPolicyService(ctx context.Context, repo repository.PolicyRepository) (PolicyService, error) {
	s := &policyService{repo: repo}

	p, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		p = model.DefaultHealthPolicy()
		if err := repo.Save(ctx, p); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	s.current = p
	return s, nil
}

func (s *policyService) Snapshot() model.HealthPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *policyService) Update(ctx context.Context, patch model.HealthPolicyPatch) (model.HealthPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Apply(patch)
	if err := next.Validate(); err != nil {
		return model.HealthPolicy{}, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return model.HealthPolicy{}, err
	}
	s.current = next
	return next, nil
}
