package battlefield

import "Fabler/models/game"

// Initiator is the entity an action is computed against. The two
// variants — a character, or a placed dummy backed by its definition —
// expose the same bar/special capabilities so the formula resolver never
// has to inspect what it is acting on.
type Initiator interface {
	// BarValue returns the current (or, with max set, the maximum)
	// value of a bar, reporting whether the entity has that bar.
	BarValue(schemaID string, max bool) (int, bool)
	// SpecialValue returns a special's value; dummies have no specials
	// and always report false.
	SpecialValue(schemaID string) (int, bool)
}

// CharacterInitiator adapts a room character.
type CharacterInitiator struct {
	Character *game.Character
}

func (c CharacterInitiator) BarValue(schemaID string, max bool) (int, bool) {
	bar := c.Character.Bar(schemaID)
	if bar == nil {
		return 0, false
	}
	if max {
		return bar.Max, true
	}
	return bar.Current, true
}

func (c CharacterInitiator) SpecialValue(schemaID string) (int, bool) {
	special := c.Character.Special(schemaID)
	if special == nil {
		// The schema knows this special but the character record is
		// stale; degrade to zero instead of aborting the action.
		return 0, true
	}
	return special.Current, true
}

// DummyInitiator adapts a placed field instance paired with its
// definition: current values live on the instance, maximums on the
// definition.
type DummyInitiator struct {
	Definition *game.DummyDefinition
	Instance   *game.FieldInstance
}

func (d DummyInitiator) BarValue(schemaID string, max bool) (int, bool) {
	if max {
		if bar := d.Definition.BarMax(schemaID); bar != nil {
			return bar.Max, true
		}
		return 0, false
	}
	if bar := d.Instance.Bar(schemaID); bar != nil {
		return bar.Value, true
	}
	return 0, false
}

func (d DummyInitiator) SpecialValue(string) (int, bool) {
	return 0, false
}
