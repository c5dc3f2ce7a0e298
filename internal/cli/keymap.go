package cli

import "github.com/charmbracelet/bubbles/key"

// playgroundKeyMap defines key bindings for the playground.
type playgroundKeyMap struct {
	// Focus
	NextFocus key.Binding
	PrevFocus key.Binding
	Leave     key.Binding

	// Palette and slider navigation
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Swatch key.Binding
	Min    key.Binding
	Max    key.Binding

	// Slider shortcuts
	Increase key.Binding
	Decrease key.Binding

	// Surface
	Print key.Binding

	// Exit
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// defaultPlaygroundKeyMap returns the default key bindings.
func defaultPlaygroundKeyMap() playgroundKeyMap {
	return playgroundKeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave editor"),
		),

		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous / shrink"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next / grow"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Swatch: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pick color"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "slider minimum"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "slider maximum"),
		),

		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrower"),
		),

		Print: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "print color name"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit from anywhere"),
		),
	}
}

// ShortHelp returns a short list of key bindings.
func (k playgroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Swatch, k.Increase, k.Decrease, k.Help, k.Quit}
}

// FullHelp returns the full list of key bindings organized by category.
func (k playgroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Leave},
		{k.Left, k.Right, k.Select, k.Swatch},
		{k.Increase, k.Decrease, k.Min, k.Max},
		{k.Print, k.Help, k.Quit, k.ForceQuit},
	}
}
