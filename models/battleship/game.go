package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/red-alert/internal/error"
)

const (
	MinBoardWidth  = 5
	MinBoardHeight = 5
	MaxBoardWidth  = 100
	MaxBoardHeight = 100
)

type Game struct {
	width   int
	height  int
	players map[string]*Player

	// registration order, used for turn order and stable iteration
	order []string
}

func NewGame(width, height int) (*Game, error) {
	if width < MinBoardWidth {
		return nil, cerr.ErrBoardTooSmall("x", MinBoardWidth, width)
	}
	if height < MinBoardHeight {
		return nil, cerr.ErrBoardTooSmall("y", MinBoardHeight, height)
	}
	if width > MaxBoardWidth {
		return nil, cerr.ErrBoardTooLarge("x", MaxBoardWidth, width)
	}
	if height > MaxBoardHeight {
		return nil, cerr.ErrBoardTooLarge("y", MaxBoardHeight, height)
	}

	return &Game{
		width:   width,
		height:  height,
		players: make(map[string]*Player),
		order:   make([]string, 0, 2),
	}, nil
}

func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }

// AddPlayer registers a player with a fresh board and a fleet derived from
// the board area.
func (g *Game) AddPlayer(name string) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, cerr.ErrEmptyName
	}
	if _, prs := g.players[name]; prs {
		return nil, cerr.ErrPlayerNameTaken(name)
	}

	player := NewPlayer(name, NewBoard(g.width, g.height), NewFleet(g.width, g.height))
	g.players[name] = player
	g.order = append(g.order, name)
	return player, nil
}

func (g *Game) FindPlayer(name string) (*Player, error) {
	player, prs := g.players[name]
	if !prs {
		return nil, cerr.ErrPlayerNotExist(name)
	}
	return player, nil
}

// Players returns the players in registration order.
func (g *Game) Players() []*Player {
	players := make([]*Player, 0, len(g.order))
	for _, name := range g.order {
		players = append(players, g.players[name])
	}
	return players
}

func (g *Game) PlayerBoard(name string) (*Board, error) {
	player, err := g.FindPlayer(name)
	if err != nil {
		return nil, err
	}
	return player.Board(), nil
}

func (g *Game) PlayerBoats(name string) (map[string]*Boat, error) {
	player, err := g.FindPlayer(name)
	if err != nil {
		return nil, err
	}
	return player.Boats(), nil
}

func (g *Game) PlaceBoat(playerName, boatId string, x, y int) error {
	player, err := g.FindPlayer(playerName)
	if err != nil {
		return err
	}
	return player.PlaceBoat(boatId, x, y)
}

// Hit attacks (x, y) on the target player's board and reports a hit.
func (g *Game) Hit(targetName string, x, y int) (bool, error) {
	player, err := g.FindPlayer(targetName)
	if err != nil {
		return false, err
	}
	return player.Board().Hit(x, y)
}

// GetWinner returns the only player still alive. It returns false while more
// than one player is alive and also when nobody is.
func (g *Game) GetWinner() (*Player, bool) {
	var winner *Player
	for _, name := range g.order {
		player := g.players[name]
		if !player.IsAlive() {
			continue
		}
		if winner != nil {
			return nil, false
		}
		winner = player
	}
	return winner, winner != nil
}
