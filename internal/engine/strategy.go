package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Strategy makes a player's decisions. The engine validates every answer and
// never looks at how it was reached.
type Strategy interface {
	Bid(ctx context.Context, s Snapshot) (int, error)
	PlayCard(ctx context.Context, s Snapshot) (Card, error)
	// ChooseTrumpSuit is only called when a flipped Wizard lets a player declare trump.
	ChooseTrumpSuit(ctx context.Context, s Snapshot) (Suit, error)
}

// DefaultDecisionTimeout bounds every strategy call unless GameParams says otherwise.
const DefaultDecisionTimeout = 2 * time.Second

type decision[T any] struct {
	v   T
	err error
}

// decide runs one strategy call under the decision timeout. Failures, panics
// and timeouts come back as ErrPlayerFault; a canceled parent context is
// returned as is.
func decide[T any](ctx context.Context, timeout time.Duration, p *Player, what string, call func(context.Context, Strategy) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	var (
		dctx   context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		dctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		dctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	// buffered so an abandoned call can still finish and exit
	ch := make(chan decision[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- decision[T]{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		v, err := call(dctx, p.Strategy)
		ch <- decision[T]{v: v, err: err}
	}()

	select {
	case d := <-ch:
		if d.err == nil {
			return d.v, nil
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		return zero, p.reject(ErrPlayerFault, nil, fmt.Errorf("%s: %w", what, d.err))
	case <-dctx.Done():
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		err := dctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("no decision within %v: %w", timeout, err)
		}
		return zero, p.reject(ErrPlayerFault, nil, fmt.Errorf("%s: %w", what, err))
	}
}
