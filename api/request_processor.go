package api

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	cerr "github.com/saeidalz13/red-alert/internal/error"
	mb "github.com/saeidalz13/red-alert/models/battleship"
)

// RequestProcessor drives one game from a line based input. Every request
// read from in is turned into a call on the game; prompts and boards go to
// out. It holds no game rules of its own.
type RequestProcessor struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger

	boardWidth  int
	boardHeight int
	minPlayers  int

	game *mb.Game
}

func NewRequestProcessor(in io.Reader, out io.Writer, optFuncs ...Option) (*RequestProcessor, error) {
	rp := RequestProcessor{
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     log.New(os.Stderr, "", log.LstdFlags),
		minPlayers: defaultMinPlayers,
	}

	for _, opt := range optFuncs {
		if err := opt(&rp); err != nil {
			return nil, err
		}
	}
	return &rp, nil
}

// Game is nil until Run has created it.
func (rp *RequestProcessor) Game() *mb.Game {
	return rp.game
}

// Run plays a full game and returns the winner.
func (rp *RequestProcessor) Run() (*mb.Player, error) {
	rp.printf("!!! RED ALERT !!!\n")

	if err := rp.createGame(); err != nil {
		return nil, err
	}
	if err := rp.registerPlayers(); err != nil {
		return nil, err
	}
	for _, player := range rp.game.Players() {
		if err := rp.placeFleet(player); err != nil {
			return nil, err
		}
	}
	return rp.battle()
}

func (rp *RequestProcessor) createGame() error {
	var err error
	if rp.boardWidth == 0 {
		prompt := fmt.Sprintf("Please, provide a board X size in [%d, %d]:", mb.MinBoardWidth, mb.MaxBoardWidth)
		if rp.boardWidth, err = rp.readInt(prompt, mb.MinBoardWidth, mb.MaxBoardWidth); err != nil {
			return err
		}
	}
	if rp.boardHeight == 0 {
		prompt := fmt.Sprintf("Please, provide a board Y size in [%d, %d]:", mb.MinBoardHeight, mb.MaxBoardHeight)
		if rp.boardHeight, err = rp.readInt(prompt, mb.MinBoardHeight, mb.MaxBoardHeight); err != nil {
			return err
		}
	}

	game, err := mb.NewGame(rp.boardWidth, rp.boardHeight)
	if err != nil {
		return err
	}
	rp.game = game
	rp.logger.Printf("game created\tboard: %dx%d\tpieces per player: %d\n",
		rp.boardWidth, rp.boardHeight, mb.PiecesPerPlayer(rp.boardWidth, rp.boardHeight))
	return nil
}

func (rp *RequestProcessor) registerPlayers() error {
	for len(rp.game.Players()) < rp.minPlayers {
		if err := rp.registerPlayer(); err != nil {
			return err
		}
	}

	for {
		more, err := rp.readYesNo("Do you want to add a new player?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := rp.registerPlayer(); err != nil {
			return err
		}
	}
}

func (rp *RequestProcessor) registerPlayer() error {
	rp.printf("Please, provide a unique player name:\n")

nameLoop:
	for {
		name, err := rp.readLine()
		if err != nil {
			return err
		}

		player, err := rp.game.AddPlayer(name)
		switch {
		case errors.Is(err, cerr.ErrEmptyName):
			rp.printf("  (provide a non-empty name)\n")
			continue nameLoop

		case errors.Is(err, cerr.ErrDuplicateName):
			rp.printf("  (provide a unique name. Not in: %s)\n", rp.playerNames())
			continue nameLoop

		case err != nil:
			return err
		}

		rp.logger.Printf("player registered\tname: %s\tuuid: %s\tboats: %d\n", player.Name(), player.Uuid(), len(player.Boats()))
		return nil
	}
}

func (rp *RequestProcessor) placeFleet(player *mb.Player) error {
	board := player.Board()

	for !player.AllBoatsPlaced() {
		boat := player.UnplacedBoats()[0]

		if !board.HasRoomFor(boat.XLen(), boat.YLen()) {
			rp.printf("  (no room left for your %dx%d boat, placing the whole fleet again)\n", boat.XLen(), boat.YLen())
			rp.logger.Printf("fleet reset\tplayer: %s\n", player.Name())
			player.ResetPlacements()
			continue
		}

		rp.writeBoard(fmt.Sprintf("%s, your board:", player.Name()), board, true)
		rp.printf("%s, place your %dx%d boat (%d pieces, %d boats left)\n",
			player.Name(), boat.XLen(), boat.YLen(), boat.Size(), len(player.UnplacedBoats()))

	placeLoop:
		for {
			x, y, err := rp.readCoordinates(board.Width()-1, board.Height()-1)
			if err != nil {
				return err
			}

			err = rp.game.PlaceBoat(player.Name(), boat.Id(), x, y)
			switch {
			case errors.Is(err, cerr.ErrOutOfBounds):
				rp.printf("  (the boat does not fit the board at %d,%d)\n", x, y)
				continue placeLoop

			case errors.Is(err, cerr.ErrOverlap):
				rp.printf("  (the boat is too close to another boat at %d,%d)\n", x, y)
				continue placeLoop

			case err != nil:
				return err
			}

			rp.logger.Printf("boat placed\tplayer: %s\tboat: %s\tx: %d\ty: %d\n", player.Name(), boat.Id(), x, y)
			break placeLoop
		}
	}

	rp.writeBoard(fmt.Sprintf("%s, your fleet is ready:", player.Name()), board, true)
	return nil
}

// battle gives every alive player one shot per round, in registration
// order, until a single player is left.
func (rp *RequestProcessor) battle() (*mb.Player, error) {
	for {
		for _, attacker := range rp.game.Players() {
			if !attacker.IsAlive() {
				continue
			}

			if err := rp.playTurn(attacker); err != nil {
				return nil, err
			}

			if winner, ok := rp.game.GetWinner(); ok {
				rp.printf("%s wins!\n", winner.Name())
				rp.logger.Printf("game over\twinner: %s\n", winner.Name())
				return winner, nil
			}
		}
	}
}

func (rp *RequestProcessor) playTurn(attacker *mb.Player) error {
	opponents := rp.aliveOpponents(attacker)

	rp.printf("--- %s's turn ---\n", attacker.Name())
	rp.writeBoard("Your board:", attacker.Board(), true)

	target := opponents[0]
	if len(opponents) > 1 {
		names := make([]string, 0, len(opponents))
		for _, opponent := range opponents {
			names = append(names, opponent.Name())
		}
		name, err := rp.readChoice("Which player do you attack?", names)
		if err != nil {
			return err
		}
		if target, err = rp.game.FindPlayer(name); err != nil {
			return err
		}
	}

	board := target.Board()
	rp.writeBoard(fmt.Sprintf("%s's board:", target.Name()), board, false)

hitLoop:
	for {
		x, y, err := rp.readCoordinates(board.Width()-1, board.Height()-1)
		if err != nil {
			return err
		}

		alreadyHit, err := board.IsCellHit(x, y)
		if err != nil {
			return err
		}
		if alreadyHit {
			rp.printf("  (%d,%d was already attacked)\n", x, y)
			continue hitLoop
		}

		isHit, err := rp.game.Hit(target.Name(), x, y)
		if err != nil {
			return err
		}

		if isHit {
			rp.printf("Hit! %s's boat is on fire at %d,%d\n", target.Name(), x, y)
		} else {
			rp.printf("Splash. Nothing at %d,%d\n", x, y)
		}
		rp.logger.Printf("attack\tattacker: %s\ttarget: %s\tx: %d\ty: %d\thit: %t\n", attacker.Name(), target.Name(), x, y, isHit)

		if !target.IsAlive() {
			rp.printf("%s has no boat left\n", target.Name())
		}
		return nil
	}
}

func (rp *RequestProcessor) aliveOpponents(attacker *mb.Player) []*mb.Player {
	opponents := make([]*mb.Player, 0)
	for _, player := range rp.game.Players() {
		if player != attacker && player.IsAlive() {
			opponents = append(opponents, player)
		}
	}
	return opponents
}

func (rp *RequestProcessor) playerNames() string {
	var names string
	for i, player := range rp.game.Players() {
		if i > 0 {
			names += ", "
		}
		names += player.Name()
	}
	return names
}
