package buffer

import (
	"testing"

	"github.com/bethropolis/jot/internal/types"
)

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

// load fills a new buffer and clears its modified flag.
func load(t *testing.T, content string) *SliceBuffer {
	t.Helper()
	sb := NewSliceBuffer()
	if _, err := sb.Insert(pos(0, 0), []byte(content)); err != nil {
		t.Fatalf("Insert(%q): %v", content, err)
	}
	sb.SetModified(false)
	return sb
}

func TestRoundTrip(t *testing.T) {
	for _, content := range []string{"", "hello", "hello\n", "a\n\nb", "\n\n", "héllo wörld\r\n"} {
		sb := load(t, content)
		if got := string(sb.Bytes()); got != content {
			t.Errorf("round trip of %q gave %q", content, got)
		}
	}
}

func TestInsert(t *testing.T) {
	cases := []struct {
		name    string
		initial string
		at      types.Position
		text    string
		want    string
		wantEnd types.Position
	}{
		{"middle", "held", pos(0, 2), "l", "helld", pos(0, 3)},
		{"unicode", "ñu", pos(0, 1), "é", "ñéu", pos(0, 2)},
		{"newline", "ab", pos(0, 1), "\n", "a\nb", pos(1, 0)},
		{"multi line", "xy", pos(0, 1), "1\n22\n3", "x1\n22\n3y", pos(2, 1)},
		{"clamped past end", "ab\ncd", pos(9, 9), "!", "ab\ncd!", pos(1, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sb := load(t, tc.initial)
			end, err := sb.Insert(tc.at, []byte(tc.text))
			if err != nil {
				t.Fatalf("Insert: %v", err)
			}
			if got := string(sb.Bytes()); got != tc.want {
				t.Errorf("content = %q, want %q", got, tc.want)
			}
			if end != tc.wantEnd {
				t.Errorf("end = %+v, want %+v", end, tc.wantEnd)
			}
			if !sb.IsModified() {
				t.Error("insert did not mark buffer modified")
			}
		})
	}
}

func TestDelete(t *testing.T) {
	cases := []struct {
		name       string
		initial    string
		start, end types.Position
		want       string
		removed    string
	}{
		{"single line", "hello", pos(0, 1), pos(0, 3), "hlo", "el"},
		{"reversed", "hello", pos(0, 3), pos(0, 1), "hlo", "el"},
		{"join lines", "ab\ncd", pos(0, 2), pos(1, 0), "abcd", "\n"},
		{"multi line", "one\ntwo\nthree", pos(0, 1), pos(2, 2), "oree", "ne\ntwo\nth"},
		{"everything", "a\nb", pos(0, 0), pos(1, 1), "", "a\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sb := load(t, tc.initial)
			removed, err := sb.Delete(tc.start, tc.end)
			if err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if got := string(sb.Bytes()); got != tc.want {
				t.Errorf("content = %q, want %q", got, tc.want)
			}
			if string(removed) != tc.removed {
				t.Errorf("removed = %q, want %q", removed, tc.removed)
			}
			if sb.LineCount() < 1 {
				t.Error("buffer must keep at least one line")
			}
		})
	}
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	sb := load(t, "abc")
	removed, err := sb.Delete(pos(0, 1), pos(0, 1))
	if err != nil || removed != nil {
		t.Fatalf("Delete = %q, %v", removed, err)
	}
	if sb.IsModified() {
		t.Error("empty delete marked buffer modified")
	}
}

func TestLineOutOfBounds(t *testing.T) {
	sb := NewSliceBuffer()
	if _, err := sb.Line(3); err == nil {
		t.Error("expected error for missing line")
	}
}
