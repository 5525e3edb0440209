package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	boom := errors.New("boom")

	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.ResourceID)
		return boom
	})
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.ResourceID)
		return nil
	})
	d.Subscribe(EventAssetCreated, func(context.Context, Event) error {
		calls = append(calls, "asset")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated, ResourceID: "t1"})
	if !errors.Is(err, boom) {
		t.Errorf("Publish() error = %v, want boom", err)
	}
	if len(calls) != 2 || calls[0] != "first:t1" || calls[1] != "second:t1" {
		t.Errorf("calls = %v", calls)
	}
}

func TestDispatcherNoHandlers(t *testing.T) {
	if err := NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventAssetDeleted}); err != nil {
		t.Errorf("Publish() error = %v", err)
	}
}
