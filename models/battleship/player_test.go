package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/red-alert/internal/error"
)

func newTestPlayer(xLen, yLen int) (*Player, *Boat) {
	boat := NewBoat(xLen, yLen)
	player := NewPlayer("izuku", NewBoard(5, 5), map[string]*Boat{boat.Id(): boat})
	return player, boat
}

func TestPlayerPlaceBoat(t *testing.T) {
	player, boat := newTestPlayer(1, 3)

	if err := player.PlaceBoat("missing", 0, 0); !errors.Is(err, cerr.ErrUnknownBoat) {
		t.Fatalf("expected err: %v\t got: %v", cerr.ErrUnknownBoat, err)
	}

	if err := player.PlaceBoat(boat.Id(), 2, 1); err != nil {
		t.Fatal(err)
	}
	if !boat.IsPlaced() || boat.X() != 2 || boat.Y() != 1 {
		t.Fatalf("expected boat placed at 2,1\t got: placed %t at %d,%d", boat.IsPlaced(), boat.X(), boat.Y())
	}
	if !player.AllBoatsPlaced() {
		t.Fatal("every boat should be placed")
	}
}

func TestPlayerPlaceBoatFailureKeepsOrigin(t *testing.T) {
	player, boat := newTestPlayer(1, 3)

	err := player.PlaceBoat(boat.Id(), 0, 4)
	if !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected err: %v\t got: %v", cerr.ErrOutOfBounds, err)
	}
	if boat.X() != 0 || boat.Y() != 0 || boat.IsPlaced() {
		t.Fatalf("failed placement moved the boat to %d,%d", boat.X(), boat.Y())
	}
}

func TestPlayerIsAlive(t *testing.T) {
	player, boat := newTestPlayer(2, 1)
	if err := player.PlaceBoat(boat.Id(), 1, 1); err != nil {
		t.Fatal(err)
	}

	if !player.IsAlive() {
		t.Fatal("player with intact boat should be alive")
	}

	_, _ = player.Board().Hit(1, 1)
	if !player.IsAlive() {
		t.Fatal("player with one intact piece should be alive")
	}

	_, _ = player.Board().Hit(2, 1)
	if player.IsAlive() {
		t.Fatal("player with every piece hit should not be alive")
	}
}

func TestPlayerUnplacedBoats(t *testing.T) {
	small, medium, large := NewBoat(1, 1), NewBoat(1, 3), NewBoat(1, 5)
	player := NewPlayer("katsuki", NewBoard(10, 10), map[string]*Boat{
		small.Id():  small,
		medium.Id(): medium,
		large.Id():  large,
	})

	unplaced := player.UnplacedBoats()
	if len(unplaced) != 3 || unplaced[0] != large || unplaced[1] != medium || unplaced[2] != small {
		t.Fatal("unplaced boats must be ordered largest first")
	}

	if err := player.PlaceBoat(medium.Id(), 0, 0); err != nil {
		t.Fatal(err)
	}
	unplaced = player.UnplacedBoats()
	if len(unplaced) != 2 || unplaced[0] != large || unplaced[1] != small {
		t.Fatal("placed boat must leave the unplaced list")
	}
	if player.AllBoatsPlaced() {
		t.Fatal("two boats are still unplaced")
	}
}

func TestPlayerResetPlacements(t *testing.T) {
	player, boat := newTestPlayer(1, 3)
	if err := player.PlaceBoat(boat.Id(), 2, 1); err != nil {
		t.Fatal(err)
	}
	_, _ = player.Board().Hit(2, 2)

	player.ResetPlacements()

	if boat.IsPlaced() || boat.X() != 0 || boat.Y() != 0 {
		t.Fatalf("expected unplaced boat at 0,0\t got: placed %t at %d,%d", boat.IsPlaced(), boat.X(), boat.Y())
	}
	if boat.RemainingIntactPieces() != 3 {
		t.Fatalf("expected intact pieces: 3\t got: %d", boat.RemainingIntactPieces())
	}
	for y := 1; y <= 3; y++ {
		occupied, _ := player.Board().IsOccupied(2, y)
		if occupied {
			t.Fatalf("cell 2,%d still linked after reset", y)
		}
	}

	if err := player.PlaceBoat(boat.Id(), 0, 0); err != nil {
		t.Fatalf("boat should be placeable again: %v", err)
	}
}
