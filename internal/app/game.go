// internal/app/game.go
package app

import (
	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/internal/interfaces"
	"crown-defense/internal/placement"
	"crown-defense/internal/system"
	"crown-defense/internal/utils"
	"crown-defense/pkg/geometry"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	_ interfaces.Game        = (*Game)(nil)
	_ interfaces.GameContext = (*Game)(nil)
)

// Game — корень игровой сессии: деньги, жизни, волны и все системы.
// Не потокобезопасен: команды и Tick вызываются из одного цикла.
type Game struct {
	ECS                *entity.ECS
	Path               *geometry.Path
	Policy             config.Policy
	Validator          *placement.Validator
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	lib        *defs.Library
	money      int
	lives      int
	difficulty defs.Difficulty
	configured bool
	selection  defs.TowerType
}

// NewGame initializes a new session in the setup phase.
func NewGame(lib *defs.Library, rng *utils.PRNGService, policy config.Policy) *Game {
	if lib == nil {
		panic("definitions library cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Path:            config.Path,
		Policy:          policy,
		Validator:       placement.NewValidator(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		lib:             lib,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, g.Path, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, lib, g.Path, rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, lib, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	// Слушатель экономики подписывается раньше StateSystem:
	// к моменту проверки на конец игры жизнь уже списана.
	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.EnemyKilled, event.EnemyReachedCrown)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	return g
}

// GameEventListener обрабатывает события, важные для экономики.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyEvent); ok {
			l.game.money += data.Reward
		}
	case event.EnemyReachedCrown:
		if l.game.lives > 0 {
			l.game.lives--
		}
	}
}

// ConfigureSession sets the starting money and lives. Allowed only before StartSession.
func (g *Game) ConfigureSession(difficulty defs.Difficulty, healthMode bool) error {
	if g.ECS.Phase != component.SetupPhase {
		return ErrSessionStarted
	}
	def, ok := g.lib.Difficulty(difficulty)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}

	g.difficulty = difficulty
	g.money = def.StartingMoney
	g.lives = defs.StartingLives(healthMode)
	g.WaveSystem.SetHealthMultiplier(def.HealthMultiplier)
	g.configured = true

	log.WithFields(log.Fields{
		"difficulty": difficulty,
		"money":      g.money,
		"lives":      g.lives,
	}).Debug("Session configured")
	return nil
}

// StartSession activates the tick loop.
func (g *Game) StartSession() error {
	if g.ECS.Phase != component.SetupPhase {
		return ErrSessionStarted
	}
	if !g.configured {
		return ErrNotConfigured
	}
	g.StateSystem.SwitchToRunning()
	return nil
}

// Tick progresses the session by one frame. Order matters: spawn, enemy
// movement, enemy filter, towers, projectiles, projectile filter, wave end.
func (g *Game) Tick() {
	if g.ECS.Phase != component.RunningPhase {
		return
	}
	g.ECS.Tick++

	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.ECS.RemoveDeadEnemies()
	if g.ECS.Phase == component.GameOverPhase {
		return
	}

	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.ECS.RemoveSpentProjectiles()
	g.VisualEffectSystem.Update()

	g.WaveSystem.CheckWaveEnd()
}

// RequestNextWave starts the next wave. Returns false (and changes nothing)
// when a wave is already running or the session is not running.
func (g *Game) RequestNextWave() bool {
	if g.ECS.Phase != component.RunningPhase {
		return false
	}
	return g.WaveSystem.StartWave()
}

// --- Public Accessors ---

func (g *Game) Money() int                  { return g.money }
func (g *Game) Lives() int                  { return g.lives }
func (g *Game) Wave() int                   { return g.ECS.Wave.Number }
func (g *Game) WaveActive() bool            { return g.ECS.Wave.Active }
func (g *Game) Phase() component.Phase      { return g.ECS.Phase }
func (g *Game) Selection() defs.TowerType   { return g.selection }
func (g *Game) Difficulty() defs.Difficulty { return g.difficulty }
func (g *Game) Library() *defs.Library      { return g.lib }

// reject сообщает подписчикам об отклонённой команде и возвращает ту же ошибку.
func (g *Game) reject(err error) error {
	log.WithError(err).Debug("Command rejected")
	g.EventDispatcher.Dispatch(event.Event{Type: event.CommandRejected, Data: err})
	return err
}
