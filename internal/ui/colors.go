package ui

// Accessors for the active theme, for use inside format strings.

func ColorPrimary() string   { return GetCurrentTheme().Primary }
func ColorSecondary() string { return GetCurrentTheme().Secondary }
func ColorSuccess() string   { return GetCurrentTheme().Success }
func ColorWarning() string   { return GetCurrentTheme().Warning }
func ColorError() string     { return GetCurrentTheme().Error }
func ColorNumber() string    { return GetCurrentTheme().Number }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }

// Paint wraps s in color and a reset. With the no-color theme it returns s.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
