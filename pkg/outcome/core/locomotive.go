package core

import (
	"context"
	"sync"
)

// CancellationHandlers route work that a locomotive could not hand off
// before its context ended. In is the stage input element, Out the stage
// output element (typically outcome.Outcome instantiations).
type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out, outCh chan<- Out)
}

func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) <-chan Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					// onCancelProcessed must decide, re-emitting here would duplicate
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
