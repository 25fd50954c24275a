package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notely/pkg/core"
)

// Hook runs on every storage event before it is forwarded.
type Hook func(ctx context.Context, e core.StorageEvent)

type storageSource struct {
	events <-chan core.StorageEvent
	hook   Hook
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits storage events.
// hook may be nil.
func NewSource(events <-chan core.StorageEvent, hook Hook) lifecycle.Source {
	return &storageSource{
		events: events,
		hook:   hook,
		out:    make(chan lifecycle.Event),
	}
}

func (s *storageSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storageSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.hook != nil {
					s.hook(ctx, e)
				}
				// core.StorageEvent implements lifecycle.Event.
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
