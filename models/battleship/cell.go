package battleship

const (
	GlyphWater  = "🟦"
	GlyphBoat   = "⚓"
	GlyphFire   = "🔥"
	GlyphSplash = "🌊"
)

// Cell is one board location. The linked piece is owned by its boat.
type Cell struct {
	isHit  bool
	boatId string
	piece  *BoatPiece
}

func (c *Cell) setBoatPiece(boatId string, piece *BoatPiece) {
	c.boatId = boatId
	c.piece = piece
}

func (c *Cell) HasBoatPiece() bool {
	return c.piece != nil
}

// BoatId is empty for open water.
func (c *Cell) BoatId() string {
	return c.boatId
}

// Hit marks the cell and its linked piece in one step.
func (c *Cell) Hit() {
	c.isHit = true
	if c.piece != nil {
		c.piece.Hit()
	}
}

func (c *Cell) Repair() {
	c.isHit = false
	if c.piece != nil {
		c.piece.Repair()
	}
}

// IsHit also reports true when the linked piece was hit through its boat.
func (c *Cell) IsHit() bool {
	return c.isHit || (c.piece != nil && c.piece.IsHit())
}

func (c *Cell) Glyph(revealBoats bool) string {
	isHit := c.IsHit()
	switch {
	case isHit && c.piece != nil:
		return GlyphFire
	case isHit:
		return GlyphSplash
	case revealBoats && c.piece != nil:
		return GlyphBoat
	default:
		return GlyphWater
	}
}
