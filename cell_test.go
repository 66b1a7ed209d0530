package screengrid

import "testing"

const combiningAcute = '́'
const combiningCircumflex = '̂'
const hebrewSheva = 'ְ'
const arabicFathatan = 'ً'

func TestCellExtendCharBecomesGrapheme(t *testing.T) {
	var c Cell
	c.Write(CharContent('e'), DefaultUseStyles())
	c.Extend(combiningAcute, DefaultUseStyles())
	if c.Content.Kind != ContentGrapheme {
		t.Fatalf("kind = %v, want ContentGrapheme", c.Content.Kind)
	}
	want := "e" + string(rune(combiningAcute))
	if c.Content.Grapheme != want {
		t.Fatalf("grapheme = %q, want %q", c.Content.Grapheme, want)
	}
}

func TestCellExtendGraphemeAppends(t *testing.T) {
	var c Cell
	base := "e" + string(rune(combiningAcute))
	c.Write(GraphemeContent(base), DefaultUseStyles())
	c.Extend(combiningCircumflex, DefaultUseStyles())
	want := base + string(rune(combiningCircumflex))
	if c.Content.Grapheme != want {
		t.Fatalf("grapheme = %q, want %q", c.Content.Grapheme, want)
	}
}

func TestCellExtendDegradesOnNonExtendableContent(t *testing.T) {
	var c Cell
	c.Write(ExtensionContent(Coords{X: 1, Y: 1}), DefaultUseStyles())
	c.Extend('x', DefaultUseStyles())
	if c.Content.Kind != ContentChar || c.Content.Char != 'x' {
		t.Fatalf("extending a non-extendable cell should degrade to a plain char write, got %+v", c.Content)
	}
}

func TestCellIsExtendableAndExtensionOf(t *testing.T) {
	anchor := Cell{Content: CharContent('w')}
	if !anchor.IsExtendable() {
		t.Fatal("a Char cell must be extendable")
	}
	ext := Cell{Content: ExtensionContent(Coords{X: 2, Y: 3})}
	if ext.IsExtendable() {
		t.Fatal("an Extension cell must not be extendable")
	}
	got, ok := ext.ExtensionOf()
	if !ok || got != (Coords{X: 2, Y: 3}) {
		t.Fatalf("ExtensionOf() = %v, %v", got, ok)
	}
	if _, ok := anchor.ExtensionOf(); ok {
		t.Fatal("a Char cell is not an Extension of anything")
	}
}

func TestIsCombiningMark(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{combiningAcute, true},
		{hebrewSheva, true},
		{arabicFathatan, true},
		{'学', false},
	}
	for _, c := range cases {
		if got := IsCombiningMark(c.r); got != c.want {
			t.Errorf("IsCombiningMark(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestImageBytesRefCounting(t *testing.T) {
	img := NewImageBytes([]byte{1, 2, 3})
	if img.refs != 1 {
		t.Fatalf("refs = %d, want 1 on creation", img.refs)
	}
	img.Retain()
	if img.refs != 2 {
		t.Fatalf("refs = %d, want 2 after Retain", img.refs)
	}
	img.Release()
	img.Release()
	if img.refs != 0 {
		t.Fatalf("refs = %d, want 0 after releasing both holders", img.refs)
	}
}

func TestCellContentString(t *testing.T) {
	if got := CharContent('x').String(); got != "x" {
		t.Fatalf("String() = %q, want %q", got, "x")
	}
	grapheme := "e" + string(rune(combiningAcute))
	if got := GraphemeContent(grapheme).String(); got != grapheme {
		t.Fatalf("String() = %q", got)
	}
	if got := EmptyContent.String(); got != "" {
		t.Fatalf("String() = %q, want empty", got)
	}
}
