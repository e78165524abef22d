package core

// Action represents a semantic board action, abstracted from physical key presses.
// The platform maps keys to actions; the board session only sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionNorth              // Up arrow, K - move cursor north
	ActionEast               // Right arrow, L - move cursor east
	ActionSouth              // Down arrow, J - move cursor south
	ActionWest               // Left arrow, H - move cursor west
	ActionAir                // 1 - apply air
	ActionFire               // 2 - apply fire
	ActionIce                // 3 - apply ice
	ActionPlant              // 4 - apply plant
	ActionStone              // 5 - apply stone
	ActionWater              // 6 - apply water
	ActionToggleChain        // C - toggle chained cascades
	ActionUndo               // U - revert the last application
	ActionSave               // S - save board
	ActionHelp               // ? - toggle help
	ActionQuit               // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionEast:
		return "East"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionAir:
		return "Air"
	case ActionFire:
		return "Fire"
	case ActionIce:
		return "Ice"
	case ActionPlant:
		return "Plant"
	case ActionStone:
		return "Stone"
	case ActionWater:
		return "Water"
	case ActionToggleChain:
		return "ToggleChain"
	case ActionUndo:
		return "Undo"
	case ActionSave:
		return "Save"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the cursor.
func (a Action) IsMove() bool {
	return a >= ActionNorth && a <= ActionWest
}

// IsElement reports whether the action applies an element.
func (a Action) IsElement() bool {
	return a >= ActionAir && a <= ActionWater
}
