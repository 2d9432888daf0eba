package config

// Layout constants.
const (
	// DefaultFocusPane is the initially focused pane (0 = templates).
	DefaultFocusPane = 0

	// MinPaneWidth is the minimum width for one list pane.
	MinPaneWidth = 24

	// CompactModeThreshold stacks the panes below this width.
	CompactModeThreshold = 70

	// TargetNameWidth is the preferred width for template and customer names.
	TargetNameWidth = 28

	// MinNameWidth is the minimum width for names.
	MinNameWidth = 8
)

// Display limits.
const (
	// MaxVisibleRows limits rows shown per pane before scrolling.
	MaxVisibleRows = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// StatusTimeoutSeconds clears the status line after this many ticks.
	StatusTimeoutSeconds = 5
)

// Input constraints.
const (
	// MaxNameLength is the maximum template or customer name length.
	MaxNameLength = 60

	// ClockInputLength fits "MM:SS".
	ClockInputLength = 5
)
