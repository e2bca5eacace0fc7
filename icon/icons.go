package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota
	Go
	Fail
	Success
	Progress
	Mark
	Link
	Search
	Loading
	Empty
	Content
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(◕‿◕)",
		squares: "◧",
	},
	Go: {
		emoji:   "🐹",
		nerd:    "",
		plain:   "Go",
		kaomoji: "ʕ•ᴥ•ʔ",
		squares: "◨",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "■",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(◔_◔)",
		squares: "◫",
	},
	Mark: {
		emoji:   "✨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "◆",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(→_→)",
		squares: "◪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "◩",
	},
	Loading: {
		emoji:   "🌀",
		nerd:    "",
		plain:   "~",
		kaomoji: "(｡•́︿•̀｡)",
		squares: "◌",
	},
	Empty: {
		emoji:   "🫙",
		nerd:    "",
		plain:   "-",
		kaomoji: "(・_・)",
		squares: "□",
	},
	Content: {
		emoji:   "📄",
		nerd:    "",
		plain:   "#",
		kaomoji: "(＾▽＾)",
		squares: "▤",
	},
}
