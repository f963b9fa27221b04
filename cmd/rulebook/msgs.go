package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "A path-scoped rule selector for AI assistant rule documents"
	MsgMatchShort = "Show which rule documents apply to the given paths"
	MsgListShort  = "List all registered rule documents"
	MsgListLong   = "List displays every rule document found in the ruleset directory, with the glob patterns that scope it."
	MsgShowShort  = "Render a rule document's body"
	MsgCheckShort = "Validate every glob pattern in the ruleset"
	MsgInitShort  = "Create a new ruleset with starter rule documents"
	MsgManShort   = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRulesDir = "Ruleset directory (overrides discovery)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagQuiet    = "Print matching rule names only"
	MsgFlagStrict   = "Exit non-zero when a path matches no rules"

	// Status messages
	MsgCheckOK        = "All patterns are valid."
	MsgInitDoneFormat = "Created ruleset at %s with %d starter rules.\n"
)

// MsgRootLong is the root command's long help text
const MsgRootLong = `rulebook manages path-scoped rule documents: Markdown files carrying
coding guidance for AI assistants, each tagged with glob patterns naming
the source paths it applies to.

Given a file path, rulebook tells you which rule documents an assistant
should load, in the order they are registered.`
