package order

import (
	"context"
	"testing"
	"time"
)

func seedOrder(repo *fakeRepo, status Status) *Order {
	o := &Order{
		OrderID:   NewOrderID(),
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = repo.Create(o)
	return o
}

func TestSimulatorStepSequence(t *testing.T) {
	repo := newFakeRepo()
	pub := &recordingPublisher{}
	sim := NewSimulator(repo, pub, time.Minute, testLogger())

	o := seedOrder(repo, StatusReceived)

	expected := []Status{StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered}
	for i, want := range expected {
		status, done, err := sim.Step(context.Background(), o.OrderID)
		if err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
		if status != want {
			t.Errorf("Step %d: expected %s, got %s", i, want, status)
		}
		wantDone := want == StatusDelivered
		if done != wantDone {
			t.Errorf("Step %d: expected done=%v, got %v", i, wantDone, done)
		}
	}

	// a delivered order never advances again
	status, done, err := sim.Step(context.Background(), o.OrderID)
	if err != nil || !done || status != StatusDelivered {
		t.Errorf("Expected terminal no-op, got status=%s done=%v err=%v", status, done, err)
	}

	pub.mu.Lock()
	published := len(pub.events)
	pub.mu.Unlock()
	if published != len(expected) {
		t.Errorf("Expected %d published transitions, got %d", len(expected), published)
	}
}

func TestSimulatorStepStopsOnCancelled(t *testing.T) {
	repo := newFakeRepo()
	sim := NewSimulator(repo, nil, time.Minute, testLogger())

	o := seedOrder(repo, StatusPreparing)

	// an external cancel lands between ticks
	if _, err := repo.UpdateStatus(o.OrderID, StatusCancelled); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	status, done, err := sim.Step(context.Background(), o.OrderID)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !done {
		t.Error("Expected done after external cancel")
	}
	if status != StatusCancelled {
		t.Errorf("Expected %s, got %s", StatusCancelled, status)
	}
}

func TestSimulatorStepMissingOrder(t *testing.T) {
	repo := newFakeRepo()
	sim := NewSimulator(repo, nil, time.Minute, testLogger())

	_, done, err := sim.Step(context.Background(), "FM-FFFFFF")
	if err != nil {
		t.Errorf("Missing order should stop silently, got %v", err)
	}
	if !done {
		t.Error("Expected done for missing order")
	}
}

func TestSimulatorTrackAndShutdown(t *testing.T) {
	repo := newFakeRepo()
	sim := NewSimulator(repo, nil, time.Hour, testLogger())

	o := seedOrder(repo, StatusReceived)

	sim.Track(o.OrderID)
	sim.Track(o.OrderID) // duplicate track is a no-op
	if got := sim.Tracking(); got != 1 {
		t.Errorf("Expected 1 tracked order, got %d", got)
	}

	sim.Shutdown()
	if got := sim.Tracking(); got != 0 {
		t.Errorf("Expected 0 tracked orders after shutdown, got %d", got)
	}

	// tick never fired, so the status is untouched
	stored, _ := repo.GetByID(o.OrderID)
	if stored.Status != StatusReceived {
		t.Errorf("Expected untouched status %s, got %s", StatusReceived, stored.Status)
	}
}
