// Package allocator proposes unassigned slots from a tome. It only
// computes a proposal; persisting the resulting token (and thereby
// claiming the slot) is the caller's job, guarded by the store's unique
// (tome, token_number) constraint.
package allocator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cenkalti/backoff/v4"

	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/store"
)

// maxReadAttempts bounds the retry of the read-candidates-then-draw
// sequence. The retry absorbs transient read failures only; it does not
// resolve allocation races.
const maxReadAttempts = 5

// Proposal is one unassigned slot drawn from a tome
type Proposal struct {
	TokenNumber    int64
	StatPoints     int
	CosmeticPoints int
	HeroTier       domain.Tier
}

// Allocator draws random unassigned slots from tomes
type Allocator struct {
	store store.Store
}

// New creates a slot allocator backed by the given store
func New(s store.Store) *Allocator {
	return &Allocator{store: s}
}

// Allocate returns one previously unassigned slot of the tome, drawn
// uniformly at random, with its point budgets and hero tier. Fails with
// domain.ErrPoolExhausted as soon as no candidates remain; transient read
// failures are retried as a whole up to maxReadAttempts times.
func (a *Allocator) Allocate(ctx context.Context, tome domain.Tome) (*Proposal, error) {
	var proposal *Proposal

	operation := func() error {
		p, err := a.propose(ctx, tome)
		if err != nil {
			if err == domain.ErrPoolExhausted {
				// Exhaustion is terminal, retrying cannot help
				return backoff.Permanent(err)
			}
			return err
		}
		proposal = p
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxReadAttempts-1)
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return proposal, nil
}

func (a *Allocator) propose(ctx context.Context, tome domain.Tome) (*Proposal, error) {
	total, err := a.store.CountTomeSlots(ctx, tome)
	if err != nil {
		return nil, fmt.Errorf("failed to read tome size: %w", err)
	}

	revealed, err := a.store.ListRevealedTokenNumbers(ctx, tome)
	if err != nil {
		return nil, fmt.Errorf("failed to read revealed slots: %w", err)
	}

	revealedSet := make(map[int64]bool, len(revealed))
	for _, n := range revealed {
		revealedSet[n] = true
	}

	// Slot numbers are 1..total; the candidate set is whatever is left
	remaining := make([]int64, 0, total)
	for n := int64(1); n <= total; n++ {
		if !revealedSet[n] {
			remaining = append(remaining, n)
		}
	}

	if len(remaining) == 0 {
		return nil, domain.ErrPoolExhausted
	}

	tokenNumber := remaining[rand.IntN(len(remaining))]

	slot, err := a.store.GetTomeSlot(ctx, tome, tokenNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to read tome slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("tome %q has no slot %d", tome, tokenNumber)
	}

	return &Proposal{
		TokenNumber:    slot.TokenNumber,
		StatPoints:     slot.StatPoints,
		CosmeticPoints: slot.CosmeticPoints,
		HeroTier:       slot.HeroTier,
	}, nil
}
