package app

import "errors"

// Ошибки команд. Команда, вернувшая ошибку, состояние не меняет.
var (
	ErrNotConfigured     = errors.New("session is not configured")
	ErrSessionStarted    = errors.New("session already started")
	ErrNotRunning        = errors.New("session is not running")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownTowerType  = errors.New("unknown tower type")
	ErrNoTowerSelected   = errors.New("no tower type selected")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWaveActive        = errors.New("wave is active")
	ErrBuildLocked       = errors.New("cannot build while a wave is active")
)
