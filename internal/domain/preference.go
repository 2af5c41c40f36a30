package domain

// Theme preference constants.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTheme is used when a session has no stored preference.
const DefaultTheme = ThemeLight

// IsValidTheme checks whether the given theme string is known.
func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
