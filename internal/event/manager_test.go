package event

import "testing"

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeFileSaved, func(e Event) bool {
		calls = append(calls, "first:"+e.Data.(FileData).FilePath)
		return false
	})
	m.Subscribe(TypeFileSaved, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeFileSaved, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	if consumed := m.Dispatch(TypeFileSaved, FileData{FilePath: "a.txt"}); !consumed {
		t.Error("expected event to be consumed")
	}
	if len(calls) != 2 || calls[0] != "first:a.txt" || calls[1] != "second" {
		t.Errorf("calls = %v", calls)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	if m.Dispatch(TypeAppReady, AppReadyData{}) {
		t.Error("no handlers must not consume")
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		m.Subscribe(TypeAppReady, func(Event) bool { late++; return false })
		return false
	})
	m.Dispatch(TypeAppReady, nil)
	if late != 0 {
		t.Error("handler added during dispatch ran in the same dispatch")
	}
	m.Dispatch(TypeAppReady, nil)
	if late != 1 {
		t.Errorf("late handler ran %d times, want 1", late)
	}
}

func TestTypeString(t *testing.T) {
	if TypeFocusChanged.String() != "FocusChanged" || Type(99).String() != "Unknown" {
		t.Error("unexpected type names")
	}
}
