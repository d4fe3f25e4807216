// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Checker Registry - these keys manage the discovery and loading of named text checks.
const (
	CheckersLoadCustom = "checkers.load_custom"
)

// History Tracking - these keys configure the persistence of evaluated run records.
const (
	HistorySaveOnRun = "history.save_on_run"
)

// Evaluation Engine - these keys bound the non-interactive stack script executor.
const (
	EvalStepLimit = "eval.step_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the stack playground's styling and logic.
const (
	TUIPromptString = "tui.prompt"
	TUIMaxVisible   = "tui.max_visible"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
