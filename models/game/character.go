package game

// Schema entries are authored per room in the character settings window.
// Characters and dummies reference them by schema id; display names are
// localized strings and also drive formula variable matching.

type BarSchema struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SpecialSchema struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EffectSchema struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CharacterSchema struct {
	Bars     []BarSchema     `json:"bars"`
	Specials []SpecialSchema `json:"specials"`
	Effects  []EffectSchema  `json:"effects"`
}

// CharacterBar is a current/max resource (health and the like).
type CharacterBar struct {
	SchemaID string `json:"id"`
	Current  int    `json:"current"`
	Max      int    `json:"max"`
}

// CharacterSpecial is a flat numeric attribute without a maximum.
type CharacterSpecial struct {
	SchemaID string `json:"id"`
	Current  int    `json:"current"`
}

/*
 * 'Character' is a player-controlled entity owned by a room. Effects hold
 * schema ids only; bars and specials are kept in sync with the room schema
 * by the settings service.
 */
type Character struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Avatar      string             `json:"avatar"`
	Level       int                `json:"level"`
	Bars        []CharacterBar     `json:"bars"`
	Specials    []CharacterSpecial `json:"specials"`
	Effects     []string           `json:"effects"`
}

// Bar returns the character's bar record for a schema id.
func (c *Character) Bar(schemaID string) *CharacterBar {
	for i := range c.Bars {
		if c.Bars[i].SchemaID == schemaID {
			return &c.Bars[i]
		}
	}
	return nil
}

// Special returns the character's special record for a schema id.
func (c *Character) Special(schemaID string) *CharacterSpecial {
	for i := range c.Specials {
		if c.Specials[i].SchemaID == schemaID {
			return &c.Specials[i]
		}
	}
	return nil
}
