package engine

import (
	"context"

	"pixel-art/internal/stats"
)

// AdvancedHandle resolves exactly once with the advanced statistics of one
// generation.
type AdvancedHandle struct {
	done  chan struct{}
	stats *stats.Advanced
	err   error
}

func newHandle() *AdvancedHandle {
	return &AdvancedHandle{done: make(chan struct{})}
}

func (h *AdvancedHandle) resolve(s *stats.Advanced, err error) {
	h.stats, h.err = s, err
	close(h.done)
}

// Done is closed once the statistics are available.
func (h *AdvancedHandle) Done() <-chan struct{} { return h.done }

// Wait blocks until the statistics resolve or ctx ends. It returns
// ErrAdvancedDisabled when advanced statistics were turned off for the
// generation.
func (h *AdvancedHandle) Wait(ctx context.Context) (*stats.Advanced, error) {
	select {
	case <-h.done:
		return h.stats, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
