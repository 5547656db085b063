package surcharge

import "github.com/google/uuid"

type Type string

const (
	TypeExtraBed  Type = "extra_bed"
	TypeAdult     Type = "adult"
	TypeChild     Type = "child"
	TypeBreakfast Type = "breakfast"
	TypeOther     Type = "other"
)

const (
	DefaultMinAge = 0
	DefaultMaxAge = 17
)

// Rule is a per-room extra-charge rule. Static configuration, read-only to
// the pricing engine.
type Rule struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	Type         Type
	Label        string
	MinAge       int
	MaxAge       int
	Amount       int64
	PerNight     bool
	AppliesRoom  bool
	AppliesCombo bool
	Mandatory    bool
	SortOrder    int
	Active       bool
}

// MatchesAge reports whether an age falls in the rule's inclusive band.
func (r *Rule) MatchesAge(age int) bool {
	return age >= r.MinAge && age <= r.MaxAge
}
