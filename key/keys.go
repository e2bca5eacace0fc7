// Package key names every configuration key.
package key

// DefinedFieldsCount is the number of keys registered in config.Default.
const DefinedFieldsCount = 19

// Content sources.
const (
	SourcesDefault = "sources.default"
	SourcesTarget  = "sources.target"
)

// Placeholder scheduling.
const (
	ViewstateToLoadingDelay   = "viewstate.to_loading_delay"
	ViewstateFromLoadingDelay = "viewstate.from_loading_delay"
	ViewstateAnimate          = "viewstate.animate"
)

// Terminal UI.
const (
	TUIFadeDuration       = "tui.fade_duration"
	TUIShowHelp           = "tui.show_help"
	TUIItemSpacing        = "tui.item_spacing"
	TUIShowURLs           = "tui.show_urls"
	TUISearchPromptString = "tui.search_prompt"
)

const (
	NetworkTimeout = "network.timeout"
)

const (
	HistorySave = "history.save"
)

const (
	SearchShowSuggestions = "search.show_suggestions"
)

const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
