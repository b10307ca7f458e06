package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/red-alert/internal/error"
)

// BoatPiece is one unit of a boat's footprint. Its offset is local to the boat.
type BoatPiece struct {
	x     int
	y     int
	isHit bool
}

func newBoatPiece(x, y int) BoatPiece {
	return BoatPiece{x: x, y: y}
}

func (bp *BoatPiece) X() int { return bp.x }
func (bp *BoatPiece) Y() int { return bp.y }

func (bp *BoatPiece) Hit() {
	bp.isHit = true
}

func (bp *BoatPiece) Repair() {
	bp.isHit = false
}

func (bp *BoatPiece) IsHit() bool {
	return bp.isHit
}

// Boat is a straight line of pieces. Until it is placed its origin is (0, 0).
//
// The pieces slice is allocated once and never grows, so pointers handed
// out by PieceLink stay valid for the lifetime of the boat.
type Boat struct {
	id       string
	x        int
	y        int
	xLen     int
	yLen     int
	isPlaced bool
	pieces   []BoatPiece
}

func NewBoat(xLen, yLen int) *Boat {
	boat := &Boat{
		id:     uuid.NewString(),
		xLen:   xLen,
		yLen:   yLen,
		pieces: make([]BoatPiece, 0, xLen*yLen),
	}

	for pieceX := 0; pieceX < xLen; pieceX++ {
		for pieceY := 0; pieceY < yLen; pieceY++ {
			boat.pieces = append(boat.pieces, newBoatPiece(pieceX, pieceY))
		}
	}
	return boat
}

// Clone returns a fresh unplaced boat with the same dimensions and a new id.
// Hit and placement state are not copied.
func (b *Boat) Clone() *Boat {
	return NewBoat(b.xLen, b.yLen)
}

func (b *Boat) Id() string     { return b.id }
func (b *Boat) X() int         { return b.x }
func (b *Boat) Y() int         { return b.y }
func (b *Boat) XLen() int      { return b.xLen }
func (b *Boat) YLen() int      { return b.yLen }
func (b *Boat) Size() int      { return len(b.pieces) }
func (b *Boat) IsPlaced() bool { return b.isPlaced }

func (b *Boat) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

func (b *Boat) place() {
	b.isPlaced = true
}

// unplace returns the boat to its pre-placement state and repairs it.
func (b *Boat) unplace() {
	b.isPlaced = false
	b.x, b.y = 0, 0
	for i := range b.pieces {
		b.pieces[i].Repair()
	}
}

// Target reports whether (x, y) lies inside the boat's current rectangle.
func (b *Boat) Target(x, y int) bool {
	return x >= b.x && x < b.x+b.xLen && y >= b.y && y < b.y+b.yLen
}

func (b *Boat) Hit(x, y int) bool {
	index, ok := b.coordinatesToIndex(x, y)
	if !ok {
		return false
	}
	b.pieces[index].Hit()
	return true
}

// PieceLink returns the piece at the absolute coordinate (x, y). The returned
// pointer is shared with the board cell it gets attached to.
func (b *Boat) PieceLink(x, y int) (*BoatPiece, error) {
	index, ok := b.coordinatesToIndex(x, y)
	if !ok {
		return nil, cerr.ErrPieceNotOnBoat(x, y)
	}
	return &b.pieces[index], nil
}

func (b *Boat) RemainingIntactPieces() int {
	var remaining int
	for i := range b.pieces {
		if !b.pieces[i].IsHit() {
			remaining++
		}
	}
	return remaining
}

func (b *Boat) IsSunk() bool {
	return b.RemainingIntactPieces() == 0
}

// pieces are stored x-major: index = dx*yLen + dy
func (b *Boat) coordinatesToIndex(x, y int) (int, bool) {
	if !b.Target(x, y) {
		return 0, false
	}
	return (x-b.x)*b.yLen + (y - b.y), true
}
