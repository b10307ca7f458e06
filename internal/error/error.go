package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid game configuration")
	ErrDuplicateName = errors.New("player name already registered")
	ErrEmptyName     = errors.New("player name is empty")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownBoat   = errors.New("unknown boat")
	ErrOutOfBounds   = errors.New("out of board bound")
	ErrOverlap       = errors.New("boat overlaps or touches another boat")
	ErrBoatPlaced    = errors.New("boat already placed")
)

func ErrBoardTooSmall(axis string, minSize, size int) error {
	return fmt.Errorf("%w: expected %s size in the range %d.. provided: %d", ErrInvalidConfig, axis, minSize, size)
}

func ErrBoardTooLarge(axis string, maxSize, size int) error {
	return fmt.Errorf("%w: expected %s size at most %d provided: %d", ErrInvalidConfig, axis, maxSize, size)
}

func ErrPlayerNameTaken(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateName, name)
}

func ErrPlayerNotExist(name string) error {
	return fmt.Errorf("%w: player with this name does not exist, name: %s", ErrUnknownPlayer, name)
}

func ErrBoatNotExist(boatId string) error {
	return fmt.Errorf("%w: boat with this id does not exist, id: %s", ErrUnknownBoat, boatId)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: incoming x or y is out of board bound\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrBoatOutOfGridBound(x, y, xLen, yLen int) error {
	return fmt.Errorf("%w: boat %dx%d at x: %d y: %d does not fit the board", ErrOutOfBounds, xLen, yLen, x, y)
}

func ErrBoatTooClose(x, y int) error {
	return fmt.Errorf("%w: position already taken or adjacent to a boat\tx: %d\ty: %d", ErrOverlap, x, y)
}

func ErrPieceNotOnBoat(x, y int) error {
	return fmt.Errorf("%w: no boat piece at\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrBoatAlreadyPlaced(boatId string) error {
	return fmt.Errorf("%w: id: %s", ErrBoatPlaced, boatId)
}
