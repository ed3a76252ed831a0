package relay

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	User     int // user input accent
	Answer   int // assistant answer text
	ToolCall int // tool call header
	Error    int // error messages
	Success  int // tool result indicators
	Muted    int // status bar, placeholders
	Accent   int // headings, links
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		User:     4,
		Answer:   -1,
		ToolCall: 3,
		Error:    1,
		Success:  2,
		Muted:    8,
		Accent:   5,
	}
}
