package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRun
	ActionMelee
	ActionRanged
	ActionMagical
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "left",
	ActionMoveRight:  "right",
	ActionJump:       "jump",
	ActionRun:        "run",
	ActionMelee:      "melee",
	ActionRanged:     "ranged",
	ActionMagical:    "magical",
	ActionPause:      "pause",
	ActionMenuUp:     "menu_up",
	ActionMenuDown:   "menu_down",
	ActionMenuSelect: "menu_select",
	ActionMenuBack:   "menu_back",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "invalid"
	}
	return actionNames[a]
}
