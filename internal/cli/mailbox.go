package cli

import "context"

// mailbox holds the newest value put into it. Put never blocks; a value
// nobody has taken yet is replaced.
type mailbox[T any] struct {
	ch chan T
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{ch: make(chan T, 1)}
}

func (m *mailbox[T]) Put(v T) {
	for {
		select {
		case m.ch <- v:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// deliver hands each value to send until ctx is done.
func (m *mailbox[T]) deliver(ctx context.Context, send func(T)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-m.ch:
			send(v)
		}
	}
}
