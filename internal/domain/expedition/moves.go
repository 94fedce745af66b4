package expedition

// MoveCode is one decoded two-bit movement instruction.
type MoveCode uint8

const (
	MoveDown  MoveCode = 0
	MoveRight MoveCode = 1
	MoveLeft  MoveCode = 2
	MoveUp    MoveCode = 3
)

const (
	// MoveBufferSize is the wire size of a packed move buffer. The trailing
	// bytes past MoveBufferUsed carry no moves and may hold arbitrary bits.
	MoveBufferSize = 32
	MoveBufferUsed = 25
	// MovesPerWalk is the number of moves replayed per explore call: four
	// two-bit codes per used byte.
	MovesPerWalk = MoveBufferUsed * 4
)

// MoveBuffer is a packed sequence of 100 move codes in its first 25 bytes.
type MoveBuffer [MoveBufferSize]byte

// MoveAt returns move i (0-based) of the buffer. Codes are packed four per
// byte, most significant pair first, so byte b yields (b>>6)&3, (b>>4)&3,
// (b>>2)&3, b&3 in that order.
func (m MoveBuffer) MoveAt(i int) MoveCode {
	b := m[i/4]
	shift := uint(6 - 2*(i%4))
	return MoveCode((b >> shift) & 0b11)
}

// DecodeMoves unpacks the full ordered move sequence. Every byte value is a
// valid group of four moves, so decoding cannot fail.
func DecodeMoves(m MoveBuffer) [MovesPerWalk]MoveCode {
	var out [MovesPerWalk]MoveCode
	for i := range out {
		out[i] = m.MoveAt(i)
	}
	return out
}

func (c MoveCode) String() string {
	switch c {
	case MoveDown:
		return "down"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	}
	return "invalid"
}
