package events

import (
	"testing"

	"github.com/google/uuid"
)

func TestReceiver(t *testing.T) {
	scanID := uuid.New()
	items := []Event{
		StartEvent(scanID, "/tmp"),
		PathEvent(scanID, "/tmp/a"),
		PathErrorEvent(scanID, "/tmp/b", "permission denied"),
		DoneEvent(scanID),
	}

	receiver := New()

	listener1 := receiver.Listen()
	listener2 := receiver.Listen()

	go func() {
		for i := range items {
			receiver.Send(items[i])
		}
		receiver.Close()
	}()

	got1 := []Event{}
	got2 := []Event{}
	for {
		select {
		case x, ok := <-listener1:
			if !ok {
				listener1 = nil
			} else {
				got1 = append(got1, x.(Event))
			}
		case x, ok := <-listener2:
			if !ok {
				listener2 = nil
			} else {
				got2 = append(got2, x.(Event))
			}
		}

		if listener1 == nil && listener2 == nil {
			break
		}
	}

	if len(got1) != len(items) || len(got2) != len(items) {
		t.Fatalf("unexpected number of events received: got %d and %d, want %d",
			len(got1), len(got2), len(items))
	}

	for i := range items {
		if got1[i] != items[i] {
			t.Errorf("unexpected event #%d: got %v, want %v", i, got1[i], items[i])
		}
		if got2[i] != items[i] {
			t.Errorf("unexpected event #%d: got %v, want %v", i, got2[i], items[i])
		}
	}
}

func TestReceiverEventFields(t *testing.T) {
	scanID := uuid.New()

	start := StartEvent(scanID, "/data")
	if start.RootPath != "/data" {
		t.Fatalf("unexpected root path: got %s, want /data", start.RootPath)
	}
	if start.Timestamp().IsZero() {
		t.Fatalf("expected a timestamp, got zero")
	}

	pathError := PathErrorEvent(scanID, "/data/x", "gone")
	if pathError.ScanID != scanID {
		t.Fatalf("unexpected scan id: got %v, want %v", pathError.ScanID, scanID)
	}
	if pathError.Message != "gone" {
		t.Fatalf("unexpected message: got %s, want gone", pathError.Message)
	}
}
