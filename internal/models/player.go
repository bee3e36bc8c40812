package models

// Player is a seat in a match session
type Player struct {
	// Name identifies the player within its session
	Name string `json:"name"`

	// Choice is nil until the player has chosen
	Choice *Choice `json:"choice,omitempty"`
}

// HasChoice reports whether the player has submitted a choice
func (p *Player) HasChoice() bool {
	return p != nil && p.Choice != nil
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	clone := &Player{Name: p.Name}
	if p.Choice != nil {
		clone.Choice = p.Choice.Ptr()
	}
	return clone
}
