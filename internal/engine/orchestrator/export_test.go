package orchestrator

// Exported for tests.
var (
	SubstituteFiles = substituteFiles
	SentinelPath    = sentinelPath
	ShellQuote      = shellQuote
)
