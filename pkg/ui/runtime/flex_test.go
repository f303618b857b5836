package runtime

import (
	"testing"

	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
)

func newStub(w, h int) *stubWidget {
	return &stubWidget{pref: Size{Width: w, Height: h}}
}

func TestVBox_FixedChildren(t *testing.T) {
	w1, w2, w3 := newStub(100, 10), newStub(100, 20), newStub(100, 30)
	vbox := VBox(Fixed(w1), Fixed(w2), Fixed(w3))

	if size := vbox.Measure(Loose(100, 100)); size.Height != 60 {
		t.Errorf("Measure height = %d, want 60", size.Height)
	}
	vbox.Layout(Rect{0, 0, 100, 100})

	if w1.bounds != (Rect{0, 0, 100, 10}) {
		t.Errorf("w1 bounds = %v", w1.bounds)
	}
	if w2.bounds != (Rect{0, 10, 100, 20}) {
		t.Errorf("w2 bounds = %v", w2.bounds)
	}
	if w3.bounds != (Rect{0, 30, 100, 30}) {
		t.Errorf("w3 bounds = %v", w3.bounds)
	}
}

func TestVBox_ExpandedFillsRemainder(t *testing.T) {
	body, status := newStub(10, 1), newStub(10, 1)
	vbox := VBox(Expanded(body), Fixed(status))

	vbox.Measure(Tight(40, 20))
	vbox.Layout(Rect{0, 0, 40, 20})

	if body.bounds != (Rect{0, 0, 40, 19}) {
		t.Errorf("body bounds = %v, want {0 0 40 19}", body.bounds)
	}
	if status.bounds != (Rect{0, 19, 40, 1}) {
		t.Errorf("status bounds = %v, want {0 19 40 1}", status.bounds)
	}
}

func TestHBox_GapAndSized(t *testing.T) {
	left, right := newStub(5, 3), newStub(7, 3)
	hbox := HBox(Sized(left, 8), Fixed(right)).WithGap(2)

	if size := hbox.Measure(Loose(100, 10)); size.Width != 17 {
		t.Errorf("Measure width = %d, want 17", size.Width)
	}
	hbox.Layout(Rect{X: 1, Y: 1, Width: 30, Height: 3})

	if left.bounds != (Rect{1, 1, 8, 3}) {
		t.Errorf("left bounds = %v", left.bounds)
	}
	if right.bounds != (Rect{11, 1, 7, 3}) {
		t.Errorf("right bounds = %v", right.bounds)
	}
}

func TestFlex_MouseGoesToChildUnderPointer(t *testing.T) {
	top, bottom := newStub(10, 2), newStub(10, 2)
	top.handle, bottom.handle = true, true
	vbox := VBox(Fixed(top), Fixed(bottom))
	vbox.Measure(Loose(10, 4))
	vbox.Layout(Rect{0, 0, 10, 4})

	vbox.HandleMessage(MouseMsg{X: 1, Y: 3, Button: MouseLeft, Action: MousePress})
	if len(top.seen) != 0 || len(bottom.seen) != 1 {
		t.Errorf("mouse routed to top=%d bottom=%d, want 0/1", len(top.seen), len(bottom.seen))
	}
}

func TestFlex_KeysStopAtFirstHandler(t *testing.T) {
	first, second := newStub(1, 1), newStub(1, 1)
	first.handle = true
	vbox := VBox(Fixed(first), Fixed(second))

	res := vbox.HandleMessage(KeyMsg{Key: terminal.KeyEnter})
	if !res.Handled {
		t.Error("expected key to be handled")
	}
	if len(second.seen) != 0 {
		t.Error("second child should not see a key already handled")
	}
}

func TestFlex_TakeFocusFirstAccepting(t *testing.T) {
	refuse := &focusProbe{canFocus: false}
	accept := &focusProbe{canFocus: true}
	vbox := VBox(Fixed(refuse), Fixed(accept))

	if err := vbox.TakeFocus(DirNone); err != nil {
		t.Fatalf("TakeFocus = %v", err)
	}
	if !accept.focused || refuse.focused {
		t.Error("focus should land on the first accepting child")
	}

	if err := VBox().TakeFocus(DirNone); err == nil {
		t.Error("empty flex should refuse focus")
	}
}

func TestNamed_Lookup(t *testing.T) {
	inner := newStub(1, 1)
	vbox := VBox(Fixed(NewNamed("status", inner)))

	var found Widget
	if !LookupName(vbox, "status", func(w Widget) { found = w }) {
		t.Fatal("expected lookup to succeed")
	}
	if found != inner {
		t.Error("lookup should yield the wrapped widget")
	}
	if LookupName(vbox, "missing", func(Widget) {}) {
		t.Error("lookup of unknown name should fail")
	}
}

func TestNamed_ImportantAreaFallsBackToBounds(t *testing.T) {
	inner := newStub(3, 1)
	n := NewNamed("x", inner)
	n.Layout(Rect{2, 2, 3, 1})
	if got := n.ImportantArea(); got != (Rect{2, 2, 3, 1}) {
		t.Errorf("ImportantArea = %v", got)
	}
}
