package battleship

import (
	"sort"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/red-alert/internal/error"
)

type Player struct {
	name  string
	uuid  string
	board *Board
	boats map[string]*Boat
}

func NewPlayer(name string, board *Board, boats map[string]*Boat) *Player {
	return &Player{
		name:  name,
		uuid:  uuid.NewString(),
		board: board,
		boats: boats,
	}
}

func (p *Player) Name() string            { return p.name }
func (p *Player) Uuid() string            { return p.uuid }
func (p *Player) Board() *Board           { return p.board }
func (p *Player) Boats() map[string]*Boat { return p.boats }

func (p *Player) FindBoat(boatId string) (*Boat, error) {
	boat, prs := p.boats[boatId]
	if !prs {
		return nil, cerr.ErrBoatNotExist(boatId)
	}
	return boat, nil
}

// PlaceBoat moves the boat to (x, y) and places it on the board. On failure
// the boat keeps its previous origin.
func (p *Player) PlaceBoat(boatId string, x, y int) error {
	boat, err := p.FindBoat(boatId)
	if err != nil {
		return err
	}

	prevX, prevY := boat.X(), boat.Y()
	boat.SetOrigin(x, y)
	if err := p.board.PlaceBoat(boat); err != nil {
		boat.SetOrigin(prevX, prevY)
		return err
	}
	return nil
}

// ResetPlacements takes every boat off the board so the fleet can be placed
// again. Meant for the placement phase: hits are cleared too.
func (p *Player) ResetPlacements() {
	p.board.clear()
	for _, boat := range p.boats {
		boat.unplace()
	}
}

// IsAlive is true while at least one piece of the fleet is intact.
func (p *Player) IsAlive() bool {
	for _, boat := range p.boats {
		if boat.RemainingIntactPieces() > 0 {
			return true
		}
	}
	return false
}

// UnplacedBoats returns the boats still to place, largest first.
func (p *Player) UnplacedBoats() []*Boat {
	unplaced := make([]*Boat, 0, len(p.boats))
	for _, boat := range p.boats {
		if !boat.IsPlaced() {
			unplaced = append(unplaced, boat)
		}
	}

	sort.Slice(unplaced, func(i, j int) bool {
		if unplaced[i].Size() != unplaced[j].Size() {
			return unplaced[i].Size() > unplaced[j].Size()
		}
		return unplaced[i].Id() < unplaced[j].Id()
	})
	return unplaced
}

func (p *Player) AllBoatsPlaced() bool {
	for _, boat := range p.boats {
		if !boat.IsPlaced() {
			return false
		}
	}
	return true
}
