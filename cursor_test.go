package screengrid

import "testing"

func TestNewCursorDefaults(t *testing.T) {
	c := NewCursor()
	if c.Coords != (Coords{X: 0, Y: 0}) {
		t.Fatalf("coords = %v, want origin", c.Coords)
	}
	if c.Style.Kind != UseDefault || c.TextStyle.Kind != UseDefault {
		t.Fatalf("a new cursor should inherit default styling in both slots")
	}
}

func TestCursorSetAndResetTextStyle(t *testing.T) {
	c := NewCursor()
	bold := true
	c.SetTextStyle(Styles{Bold: &bold})
	if c.TextStyle.Kind != UseCustom || c.TextStyle.Custom.Bold == nil || !*c.TextStyle.Custom.Bold {
		t.Fatalf("text style = %+v, want bold custom", c.TextStyle)
	}
	c.ResetTextStyle()
	if c.TextStyle.Kind != UseDefault {
		t.Fatalf("text style should revert to default, got %+v", c.TextStyle)
	}
}
