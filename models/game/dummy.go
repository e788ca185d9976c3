package game

// Which battlefield window a dummy belongs to.
type FieldKind string

const (
	FieldMaster  FieldKind = "master"
	FieldPlayers FieldKind = "players"
)

// DummyBarMax is a bar slot on a dummy definition: only the maximum is
// authored, instances start their current value from it. Include marks
// whether the bar is shown on the placed token.
type DummyBarMax struct {
	SchemaID string `json:"id"`
	Max      int    `json:"max"`
	Include  bool   `json:"include"`
}

// DummyBarCurrent is the live value of one bar on a placed instance.
type DummyBarCurrent struct {
	SchemaID string `json:"id"`
	Value    int    `json:"value"`
}

// ActionTarget names the bar an action writes to and the formula whose
// evaluated result is added to it.
type ActionTarget struct {
	BarSchemaID string `json:"barId"`
	Formula     string `json:"value"`
}

// ActionTemplate is a reusable authored action on a dummy definition.
type ActionTemplate struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Target ActionTarget `json:"target"`
}

/*
 * 'DummyDefinition' is the NPC template. Placing it on a battlefield
 * produces FieldInstances; many instances may share one definition.
 */
type DummyDefinition struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Avatar  string           `json:"avatar"`
	Actions []ActionTemplate `json:"actions"`
	BarsMax []DummyBarMax    `json:"barsMax"`
}

// BarMax returns the definition's bar slot for a schema id.
func (d *DummyDefinition) BarMax(schemaID string) *DummyBarMax {
	for i := range d.BarsMax {
		if d.BarsMax[i].SchemaID == schemaID {
			return &d.BarsMax[i]
		}
	}
	return nil
}

// FieldInstance is one placed copy of a definition with independent
// current bar values.
type FieldInstance struct {
	InstanceID   string            `json:"subId"`
	DefinitionID string            `json:"id"`
	BarsCurrent  []DummyBarCurrent `json:"barsCurrent"`
}

// Bar returns the instance's live bar record for a schema id.
func (f *FieldInstance) Bar(schemaID string) *DummyBarCurrent {
	for i := range f.BarsCurrent {
		if f.BarsCurrent[i].SchemaID == schemaID {
			return &f.BarsCurrent[i]
		}
	}
	return nil
}

// Battlefield holds the dummy templates and the two live fields of a room.
type Battlefield struct {
	MasterDummies  []*DummyDefinition `json:"masterDummies"`
	PlayersDummies []*DummyDefinition `json:"playersDummies"`
	MasterField    []*FieldInstance   `json:"masterField"`
	PlayersField   []*FieldInstance   `json:"playersField"`
}

// Dummies returns the definition list of the requested window.
func (b *Battlefield) Dummies(kind FieldKind) *[]*DummyDefinition {
	if kind == FieldMaster {
		return &b.MasterDummies
	}
	return &b.PlayersDummies
}

// Field returns the live instance list of the requested window.
func (b *Battlefield) Field(kind FieldKind) *[]*FieldInstance {
	if kind == FieldMaster {
		return &b.MasterField
	}
	return &b.PlayersField
}
