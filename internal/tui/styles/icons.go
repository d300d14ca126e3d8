package styles

const (
	CheckIcon   string = "✓"
	PendingIcon string = "…"
	SearchIcon  string = "⌕"
	EmptyIcon   string = "∅"
)
