package obj

// Kind discriminates the placeable entity kinds. Editor code switches on it
// exhaustively instead of sniffing structure.
type Kind int

const (
	KindPeg Kind = iota
	KindShape
	KindSpacer
	KindCharacteristic
)

func (k Kind) String() string {
	switch k {
	case KindPeg:
		return "peg"
	case KindShape:
		return "shape"
	case KindSpacer:
		return "spacer"
	case KindCharacteristic:
		return "characteristic"
	default:
		return "unknown"
	}
}
