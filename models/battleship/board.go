package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/red-alert/internal/error"
)

// Board is a width x height grid indexed as cells[x][y].
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard does not validate the size; Game enforces the minimum.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, width)
	for x := 0; x < width; x++ {
		cells[x] = make([]Cell, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsInBound(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) Cell(x, y int) (*Cell, error) {
	if !b.IsInBound(x, y) {
		return nil, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return &b.cells[x][y], nil
}

// PlaceBoat links the cells under the boat to its pieces. The boat origin
// must already be set. Validation runs fully before any cell is touched so a
// rejected boat leaves the board unchanged.
func (b *Board) PlaceBoat(boat *Boat) error {
	if boat.IsPlaced() {
		return cerr.ErrBoatAlreadyPlaced(boat.Id())
	}

	if err := b.checkPlacement(boat.X(), boat.Y(), boat.XLen(), boat.YLen()); err != nil {
		return err
	}

	x1, y1 := boat.X(), boat.Y()
	x2, y2 := x1+boat.XLen(), y1+boat.YLen()

	links := make([]*BoatPiece, 0, boat.Size())
	for x := x1; x < x2; x++ {
		for y := y1; y < y2; y++ {
			piece, err := boat.PieceLink(x, y)
			if err != nil {
				return err
			}
			links = append(links, piece)
		}
	}

	i := 0
	for x := x1; x < x2; x++ {
		for y := y1; y < y2; y++ {
			b.cells[x][y].setBoatPiece(boat.Id(), links[i])
			i++
		}
	}
	boat.place()
	return nil
}

func (b *Board) checkPlacement(x1, y1, xLen, yLen int) error {
	x2, y2 := x1+xLen, y1+yLen
	if x1 < 0 || y1 < 0 || x2 > b.width || y2 > b.height {
		return cerr.ErrBoatOutOfGridBound(x1, y1, xLen, yLen)
	}

	// one cell of buffer around the boat, clamped to the board
	bx1, by1 := max(x1-1, 0), max(y1-1, 0)
	bx2, by2 := min(x2+1, b.width), min(y2+1, b.height)
	for x := bx1; x < bx2; x++ {
		for y := by1; y < by2; y++ {
			if b.cells[x][y].HasBoatPiece() {
				return cerr.ErrBoatTooClose(x, y)
			}
		}
	}
	return nil
}

// HasRoomFor reports whether a xLen x yLen boat has at least one legal origin.
func (b *Board) HasRoomFor(xLen, yLen int) bool {
	for x := 0; x+xLen <= b.width; x++ {
		for y := 0; y+yLen <= b.height; y++ {
			if b.checkPlacement(x, y, xLen, yLen) == nil {
				return true
			}
		}
	}
	return false
}

// clear empties every cell.
func (b *Board) clear() {
	for x := range b.cells {
		for y := range b.cells[x] {
			b.cells[x][y] = Cell{}
		}
	}
}

// Hit marks the cell at (x, y) and reports whether a boat piece was there.
// Hitting the same cell again is accepted and changes nothing.
func (b *Board) Hit(x, y int) (bool, error) {
	cell, err := b.Cell(x, y)
	if err != nil {
		return false, err
	}
	cell.Hit()
	return cell.HasBoatPiece(), nil
}

func (b *Board) Repair(x, y int) error {
	cell, err := b.Cell(x, y)
	if err != nil {
		return err
	}
	cell.Repair()
	return nil
}

// IsOccupied reports whether a boat piece sits on (x, y), hit or not.
func (b *Board) IsOccupied(x, y int) (bool, error) {
	cell, err := b.Cell(x, y)
	if err != nil {
		return false, err
	}
	return cell.HasBoatPiece(), nil
}

// IsCellHit reports whether (x, y) has already been attacked.
func (b *Board) IsCellHit(x, y int) (bool, error) {
	cell, err := b.Cell(x, y)
	if err != nil {
		return false, err
	}
	return cell.IsHit(), nil
}

// Render draws one line per row with y growing downward. With revealBoats
// false only attacked cells differ from open water.
func (b *Board) Render(revealBoats bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.cells[x][y].Glyph(revealBoats))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(true)
}
