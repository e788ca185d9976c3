package game_constants

// Defaults applied when a schema update introduces a bar or special the
// entity does not have yet.
const (
	DefaultBarCurrent     = 100
	DefaultBarMax         = 100
	DefaultSpecialCurrent = 5
)

// Dummy definitions track bars by maximum only; new slots start hidden.
const DefaultDummyBarInclude = false

// Dice command defaults: a bare "/d" rolls one six-sided die.
const (
	DefaultDiceCount = 1
	DefaultDieSize   = 6
)
