package component

// Phase — фаза игровой сессии
type Phase int

const (
	SetupPhase Phase = iota // выбор сложности и режима здоровья
	RunningPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case RunningPhase:
		return "running"
	case GameOverPhase:
		return "game over"
	}
	return "unknown"
}
