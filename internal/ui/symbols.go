package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed / command succeeded
	SymbolFail    = "✗" // Check failed
	SymbolPending = "○" // Not yet determined
	SymbolWarn    = "◐" // Degraded / partially working
)
