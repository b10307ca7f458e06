package battleship

import (
	"reflect"
	"testing"
)

func sumSizes(sizes []int) int {
	var total int
	for _, size := range sizes {
		total += size
	}
	return total
}

func TestFleetSizes(t *testing.T) {
	tests := []struct {
		name     string
		nPieces  int
		expected []int
	}{
		{name: "nothing", nPieces: 0, expected: []int{}},
		{name: "remainder 5", nPieces: 5, expected: []int{2, 3}},
		{name: "remainder 7", nPieces: 7, expected: []int{3, 4}},
		{name: "remainder 11", nPieces: 11, expected: []int{1, 2, 3, 5}},
		{name: "one complete set", nPieces: 15, expected: []int{1, 2, 3, 4, 5}},
		{name: "set plus remainder 5", nPieces: 20, expected: []int{1, 2, 3, 4, 5, 2, 3}},
		{name: "two sets plus remainder 14", nPieces: 44, expected: []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 2, 3, 4, 5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FleetSizes(test.nPieces)
			if !reflect.DeepEqual(got, test.expected) {
				t.Fatalf("expected: %v\t got: %v", test.expected, got)
			}
		})
	}
}

func TestRemainderTableSums(t *testing.T) {
	for remainder, sizes := range remainderBoats {
		if sumSizes(sizes) != remainder {
			t.Fatalf("remainder %d awards %d pieces", remainder, sumSizes(sizes))
		}
	}
}

func TestNewFleetPieceCount(t *testing.T) {
	for width := MinBoardWidth; width <= 20; width++ {
		for height := MinBoardHeight; height <= 20; height++ {
			fleet := NewFleet(width, height)

			var total int
			for id, boat := range fleet {
				if id != boat.Id() {
					t.Fatalf("fleet key %s does not match boat id %s", id, boat.Id())
				}
				if boat.XLen() > 1 && boat.YLen() > 1 {
					t.Fatalf("boat %dx%d is not a straight line", boat.XLen(), boat.YLen())
				}
				total += boat.Size()
			}

			if expected := width * height / 5; total != expected {
				t.Fatalf("board %dx%d expected pieces: %d\t got: %d", width, height, expected, total)
			}
		}
	}
}

func TestNewFleetSmallestBoard(t *testing.T) {
	fleet := NewFleet(5, 5)
	if len(fleet) != 2 {
		t.Fatalf("expected boats: 2\t got: %d", len(fleet))
	}

	dims := make(map[int][2]int)
	for _, boat := range fleet {
		dims[boat.Size()] = [2]int{boat.XLen(), boat.YLen()}
	}
	if dims[2] != [2]int{2, 1} {
		t.Fatalf("expected 2x1 boat\t got: %v", dims[2])
	}
	if dims[3] != [2]int{1, 3} {
		t.Fatalf("expected 1x3 boat\t got: %v", dims[3])
	}
}
