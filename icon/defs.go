package icon

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Question
	Lua
)

// icons is the global registry mapping each Icon to its per-variant representations.
var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "▣",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・;)",
		squares: "▢",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・_・?)",
		squares: "▨",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "lua",
		kaomoji: "(=^･ω･^=)",
		squares: "▦",
	},
}
