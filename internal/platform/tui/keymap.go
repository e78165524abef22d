package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hextiles/internal/core"
)

// KeyMap defines the key bindings of the board screen.
type KeyMap struct {
	North key.Binding
	East  key.Binding
	South key.Binding
	West  key.Binding

	Air   key.Binding
	Fire  key.Binding
	Ice   key.Binding
	Plant key.Binding
	Stone key.Binding
	Water key.Binding

	Chain key.Binding
	Undo  key.Binding
	Save  key.Binding
	Help  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Air, k.Fire, k.Ice, k.Plant, k.Stone, k.Water, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.East, k.South, k.West},
		{k.Air, k.Fire, k.Ice},
		{k.Plant, k.Stone, k.Water},
		{k.Chain, k.Undo, k.Save},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "north")),
		East:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "east")),
		South: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "south")),
		West:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "west")),

		Air:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "air")),
		Fire:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "fire")),
		Ice:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "ice")),
		Plant: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "plant")),
		Stone: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "stone")),
		Water: key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "water")),

		Chain: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chain cascades")),
		Undo:  key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Save:  key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "boards")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to board actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper over keys.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{bindings: []actionBinding{
		{keys.Quit, core.ActionQuit},
		{keys.North, core.ActionNorth},
		{keys.East, core.ActionEast},
		{keys.South, core.ActionSouth},
		{keys.West, core.ActionWest},
		{keys.Air, core.ActionAir},
		{keys.Fire, core.ActionFire},
		{keys.Ice, core.ActionIce},
		{keys.Plant, core.ActionPlant},
		{keys.Stone, core.ActionStone},
		{keys.Water, core.ActionWater},
		{keys.Chain, core.ActionToggleChain},
		{keys.Undo, core.ActionUndo},
		{keys.Save, core.ActionSave},
		{keys.Help, core.ActionHelp},
	}}
}

// MapKey translates a key message to an action, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
