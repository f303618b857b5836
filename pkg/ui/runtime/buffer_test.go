package runtime

import (
	"testing"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
)

func TestBuffer_NewIsBlank(t *testing.T) {
	buf := NewBuffer(4, 2)
	if buf.String() != "    \n    " {
		t.Errorf("new buffer = %q, want blanks", buf.String())
	}
	if buf.IsDirty() {
		t.Error("new buffer should not be dirty")
	}
}

func TestBuffer_SetAndGet(t *testing.T) {
	buf := NewBuffer(5, 3)
	style := backend.DefaultStyle().Bold(true)
	buf.Set(2, 1, 'x', style)

	cell := buf.Get(2, 1)
	if cell.Rune != 'x' || cell.Style != style {
		t.Errorf("Get(2,1) = %+v", cell)
	}
	if buf.DirtyCount() != 1 {
		t.Errorf("DirtyCount = %d, want 1", buf.DirtyCount())
	}

	buf.Set(2, 1, 'x', style)
	if buf.DirtyCount() != 1 {
		t.Error("writing identical content should not add dirty cells")
	}

	buf.Set(-1, 0, 'y', style)
	buf.Set(5, 0, 'y', style)
	if got := buf.Get(9, 9).Rune; got != ' ' {
		t.Errorf("out of bounds Get = %q, want blank", got)
	}
}

func TestBuffer_SetStringWideRunes(t *testing.T) {
	buf := NewBuffer(8, 1)
	used := buf.SetString(0, 0, "a世b", backend.DefaultStyle())
	if used != 4 {
		t.Errorf("columns used = %d, want 4", used)
	}
	if buf.Get(1, 0).Rune != '世' || buf.Get(2, 0).Rune != 0 || buf.Get(3, 0).Rune != 'b' {
		t.Errorf("unexpected cells: %q", buf.Row(0))
	}
	if buf.Row(0) != "a世b    " {
		t.Errorf("Row(0) = %q", buf.Row(0))
	}
}

func TestBuffer_SetStringMaxClips(t *testing.T) {
	buf := NewBuffer(8, 1)
	used := buf.SetStringMax(0, 0, "ab世", backend.DefaultStyle(), 3)
	if used != 2 {
		t.Errorf("columns used = %d, want 2 (wide rune must not straddle)", used)
	}
	if buf.Row(0) != "ab      " {
		t.Errorf("Row(0) = %q", buf.Row(0))
	}
}

func TestBuffer_Lines(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.HLine(0, 0, 4, '─', backend.DefaultStyle())
	buf.VLine(3, 0, 3, '│', backend.DefaultStyle())

	want := "───│\n   │\n   │"
	if buf.String() != want {
		t.Errorf("buffer =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestBuffer_DrawBox(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.DrawBox(Rect{0, 0, 4, 3}, backend.DefaultStyle())

	want := "┌──┐\n│  │\n└──┘"
	if buf.String() != want {
		t.Errorf("box =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestBuffer_ResizePreservesContent(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.SetString(0, 0, "abc", backend.DefaultStyle())
	buf.ClearDirty()

	buf.Resize(5, 3)
	if buf.Row(0) != "abc  " {
		t.Errorf("Row(0) after resize = %q", buf.Row(0))
	}
	if buf.DirtyCount() != 15 {
		t.Errorf("DirtyCount after resize = %d, want 15", buf.DirtyCount())
	}
}

func TestBuffer_ForEachDirtyCell(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.Set(2, 0, 'a', backend.DefaultStyle())
	buf.Set(0, 2, 'b', backend.DefaultStyle())

	var got []rune
	buf.ForEachDirtyCell(func(x, y int, cell Cell) {
		got = append(got, cell.Rune)
	})
	if string(got) != "ab" {
		t.Errorf("dirty cells = %q, want row-major \"ab\"", string(got))
	}

	buf.ClearDirty()
	if buf.IsDirty() {
		t.Error("ClearDirty should reset dirty state")
	}
}
