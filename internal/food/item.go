// Package food defines the ingredients cooks carry and the stack they carry
// them in.
package food

// ID identifies a kind of food item.
type ID int

const (
	Tomato ID = iota
	ChoppedTomato
	Lettuce
	ChoppedLettuce
	Onion
	ChoppedOnion
	Meat
	Patty
	Bun
)

// String returns a human-readable name for the item.
func (id ID) String() string {
	switch id {
	case Tomato:
		return "Tomato"
	case ChoppedTomato:
		return "Chopped Tomato"
	case Lettuce:
		return "Lettuce"
	case ChoppedLettuce:
		return "Chopped Lettuce"
	case Onion:
		return "Onion"
	case ChoppedOnion:
		return "Chopped Onion"
	case Meat:
		return "Meat"
	case Patty:
		return "Patty"
	case Bun:
		return "Bun"
	default:
		return "Unknown"
	}
}

// Chopped returns what the item becomes on a chopping board.
// Items that cannot be chopped return false.
func (id ID) Chopped() (ID, bool) {
	switch id {
	case Tomato:
		return ChoppedTomato, true
	case Lettuce:
		return ChoppedLettuce, true
	case Onion:
		return ChoppedOnion, true
	case Meat:
		return Patty, true
	default:
		return id, false
	}
}

// Prepared reports whether the item is ready to be served.
func (id ID) Prepared() bool {
	switch id {
	case ChoppedTomato, ChoppedLettuce, ChoppedOnion, Patty, Bun:
		return true
	default:
		return false
	}
}

// ParseID maps a lowercase item name (as used in layout files) to its ID.
func ParseID(name string) (ID, bool) {
	switch name {
	case "tomato":
		return Tomato, true
	case "lettuce":
		return Lettuce, true
	case "onion":
		return Onion, true
	case "meat":
		return Meat, true
	case "bun":
		return Bun, true
	default:
		return 0, false
	}
}
