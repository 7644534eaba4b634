package assembly

import "fmt"

type PartKind uint8

const (
	Primary PartKind = iota + 1
	Secondary
)

// Recipe for one item.
const (
	PrimaryPerItem   = 1
	SecondaryPerItem = 2
	PartsPerItem     = PrimaryPerItem + SecondaryPerItem
)

func (k PartKind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("part(%d)", uint8(k))
	}
}

// Symbol is the one-letter form used when rendering an item.
func (k PartKind) Symbol() byte {
	switch k {
	case Primary:
		return 'P'
	case Secondary:
		return 'S'
	default:
		return '?'
	}
}
