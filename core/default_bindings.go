package core

// Scopes used by the widgets.
const (
	ScopePrices = "prices"
	ScopeAmount = "converter:amount"
	ScopeWheel  = "wheel"
)

// Actions.
const (
	ActionQuit        = "quit"
	ActionToggleTheme = "toggle-theme"
	ActionRefresh     = "refresh"
	ActionFocusAmount = "focus-amount"
	ActionBlur        = "blur"
	ActionConvert     = "convert"
	ActionFromNext    = "from-next"
	ActionFromPrev    = "from-prev"
	ActionToNext      = "to-next"
	ActionToPrev      = "to-prev"
	ActionSwap        = "swap"
	ActionSpin        = "spin"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeAmount}},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopePrices, ScopeWheel}},
		{Keys: []string{"m"}, Action: ActionToggleTheme, Description: "dark/light", Scopes: []string{ScopePrices, ScopeWheel}},
		{Keys: []string{"r"}, Action: ActionRefresh, Description: "refresh", Scopes: []string{ScopePrices}},
		{Keys: []string{"a", "tab"}, Action: ActionFocusAmount, Description: "amount", Scopes: []string{ScopePrices}},
		{Keys: []string{"esc", "tab"}, Action: ActionBlur, Description: "done", Scopes: []string{ScopeAmount}},
		{Keys: []string{"enter", "c"}, Action: ActionConvert, Description: "convert", Scopes: []string{ScopePrices}},
		{Keys: []string{"enter"}, Action: ActionConvert, Description: "convert", Scopes: []string{ScopeAmount}},
		{Keys: []string{"f"}, Action: ActionFromNext, Description: "from", Scopes: []string{ScopePrices}},
		{Keys: []string{"F"}, Action: ActionFromPrev, Scopes: []string{ScopePrices}},
		{Keys: []string{"t"}, Action: ActionToNext, Description: "to", Scopes: []string{ScopePrices}},
		{Keys: []string{"T"}, Action: ActionToPrev, Scopes: []string{ScopePrices}},
		{Keys: []string{"s"}, Action: ActionSwap, Description: "swap", Scopes: []string{ScopePrices}},
		{Keys: []string{" ", "enter"}, Action: ActionSpin, Description: "spin", Scopes: []string{ScopeWheel}},
	}
}
