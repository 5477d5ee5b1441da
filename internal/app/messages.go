package app

import (
	"crown-defense/internal/placement"
	"errors"
)

// UserMessage переводит ошибку команды в короткий текст для игрока.
func UserMessage(err error) string {
	var perr *placement.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientFunds):
		return "Not enough money!"
	case errors.Is(err, ErrBuildLocked), errors.Is(err, ErrWaveActive):
		return "Wait for the wave to end!"
	case errors.Is(err, ErrNoTowerSelected):
		return "Select a tower first"
	case errors.As(err, &perr):
		switch perr.Reason {
		case placement.OnPath:
			return "Invalid position: on the path"
		case placement.OnObjective:
			return "Invalid position: too close to the crown"
		case placement.Overlap:
			return "Invalid position: overlaps a tower"
		default:
			return "Invalid position: outside the field"
		}
	}
	return err.Error()
}
