package download

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate is a counting admission gate: at most its capacity of holders at once.
type Gate interface {
	// Acquire blocks until one unit of capacity is free or ctx is done.
	Acquire(ctx context.Context) error

	// Release returns one unit of capacity.
	Release()
}

// GateFactory builds a gate with the given capacity.
type GateFactory func(capacity int) Gate

type semaphoreGate struct {
	sem *semaphore.Weighted
}

// NewSemaphoreGate is the default GateFactory.
func NewSemaphoreGate(capacity int) Gate {
	return &semaphoreGate{sem: semaphore.NewWeighted(int64(capacity))}
}

func (g *semaphoreGate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

func (g *semaphoreGate) Release() {
	g.sem.Release(1)
}
