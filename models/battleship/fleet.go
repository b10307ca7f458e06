package battleship

const (
	piecesPerBoardArea = 5
	completeSetSize    = 15
)

// boatCatalogue maps a piece count to the boat dimensions awarded for it.
// Index 0 is unused so the index matches the boat size.
var boatCatalogue = [...][2]int{
	{0, 0},
	{1, 1},
	{2, 1},
	{1, 3},
	{4, 1},
	{1, 5},
}

// remainderBoats lists the boat sizes awarded for the pieces left over after
// complete sets. Every entry sums to its index.
var remainderBoats = [completeSetSize][]int{
	0:  nil,
	1:  {1},
	2:  {2},
	3:  {1, 2},
	4:  {1, 3},
	5:  {2, 3},
	6:  {1, 2, 3},
	7:  {3, 4},
	8:  {1, 3, 4},
	9:  {2, 3, 4},
	10: {1, 2, 3, 4},
	11: {1, 2, 3, 5},
	12: {1, 2, 4, 5},
	13: {1, 3, 4, 5},
	14: {2, 3, 4, 5},
}

func PiecesPerPlayer(width, height int) int {
	return (width * height) / piecesPerBoardArea
}

// FleetSizes returns the boat sizes for a fleet of nPieces pieces: as many
// complete sets as fit, then the remainder entry.
func FleetSizes(nPieces int) []int {
	sizes := make([]int, 0)

	for i := 0; i < nPieces/completeSetSize; i++ {
		for size := 1; size < len(boatCatalogue); size++ {
			sizes = append(sizes, size)
		}
	}

	return append(sizes, remainderBoats[nPieces%completeSetSize]...)
}

func NewFleet(width, height int) map[string]*Boat {
	templates := make([]*Boat, len(boatCatalogue))
	for size := 1; size < len(boatCatalogue); size++ {
		templates[size] = NewBoat(boatCatalogue[size][0], boatCatalogue[size][1])
	}

	sizes := FleetSizes(PiecesPerPlayer(width, height))
	fleet := make(map[string]*Boat, len(sizes))
	for _, size := range sizes {
		boat := templates[size].Clone()
		fleet[boat.Id()] = boat
	}
	return fleet
}
