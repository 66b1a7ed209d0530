package screengrid

// UnderlineStyle distinguishes the rendering of the underline decoration.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Styles is a flat struct of nullable decoration fields. A nil field means
// "unset"; Update only overwrites fields the argument actually sets, which
// is what lets UseStyles distinguish "inherit default" from "explicitly
// set to the default value."
type Styles struct {
	Foreground     *Color
	Background     *Color
	Bold           *bool
	Italic         *bool
	Underline      *UnderlineStyle
	UnderlineColor *Color
	Reverse        *bool
	Blink          *bool
	Strikethrough  *bool
}

// DEFAULT_STYLES is the zero value: every field unset.
var DEFAULT_STYLES = Styles{}

// Update performs a field-wise merge, overwriting only the fields set on s.
func (st *Styles) Update(s Styles) {
	if s.Foreground != nil {
		st.Foreground = s.Foreground
	}
	if s.Background != nil {
		st.Background = s.Background
	}
	if s.Bold != nil {
		st.Bold = s.Bold
	}
	if s.Italic != nil {
		st.Italic = s.Italic
	}
	if s.Underline != nil {
		st.Underline = s.Underline
	}
	if s.UnderlineColor != nil {
		st.UnderlineColor = s.UnderlineColor
	}
	if s.Reverse != nil {
		st.Reverse = s.Reverse
	}
	if s.Blink != nil {
		st.Blink = s.Blink
	}
	if s.Strikethrough != nil {
		st.Strikethrough = s.Strikethrough
	}
}

// UseStylesKind tags the UseStyles variant.
type UseStylesKind int

const (
	UseDefault UseStylesKind = iota
	UseCustom
)

// UseStyles distinguishes "inherit the surrounding default styling" from
// "use this explicit Styles value," which matters because an explicitly
// applied default-looking style must still survive a later style reset
// that only clears the *default* slot.
type UseStyles struct {
	Kind   UseStylesKind
	Custom Styles
}

// DefaultUseStyles is the "inherit default" variant.
func DefaultUseStyles() UseStyles {
	return UseStyles{Kind: UseDefault}
}

// CustomUseStyles wraps an explicit Styles value.
func CustomUseStyles(s Styles) UseStyles {
	return UseStyles{Kind: UseCustom, Custom: s}
}

// Update merges s into the receiver, promoting Default to Custom if needed.
func (u *UseStyles) Update(s Styles) {
	if u.Kind == UseDefault {
		u.Kind = UseCustom
		u.Custom = DEFAULT_STYLES
	}
	u.Custom.Update(s)
}
