package engine

import (
	"testing"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New(nil, nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New(nil, nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(eng.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(nil, nil)

	// Should not panic
	eng.notify(Event{Type: EventLexStart, QueryID: "test-query"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New(nil, nil)
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	eng.notify(Event{Type: EventLexStart, QueryID: "test-query", Data: "PROJECT *"})

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
}

func TestEventTimestamp(t *testing.T) {
	eng := New(nil, nil)
	observer := &MockObserver{}
	eng.AddObserver(observer)

	eng.notify(Event{Type: EventLexStart, QueryID: "test-query"})

	if observer.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestExecuteEmitsLifecycleEvents(t *testing.T) {
	eng := newCityEngine(t)
	observer := &MockObserver{}
	eng.AddObserver(observer)

	if _, err := eng.Execute("PROJECT city_name"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := []EventType{
		EventLexStart, EventLexEnd,
		EventParseStart, EventParseEnd,
		EventExecStart, EventExecEnd,
	}
	if len(observer.Events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(observer.Events))
	}
	for i, w := range want {
		if observer.Events[i].Type != w {
			t.Errorf("Event %d: expected %s, got %s", i, w, observer.Events[i].Type)
		}
	}

	first := observer.Events[0]
	for i, e := range observer.Events {
		if e.QueryID != first.QueryID {
			t.Errorf("Event %d has query id %s, expected %s", i, e.QueryID, first.QueryID)
		}
	}
}
