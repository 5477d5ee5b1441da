// internal/system/wave.go
package system

import (
	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/internal/utils"
	"crown-defense/pkg/geometry"
	"sort"

	log "github.com/sirupsen/logrus"
)

// WaveSystem генерирует волны и выпускает врагов из очереди появления.
type WaveSystem struct {
	ecs              *entity.ECS
	lib              *defs.Library
	path             *geometry.Path
	rng              *utils.PRNGService
	eventDispatcher  *event.Dispatcher
	spawnInterval    int
	healthMultiplier float64
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, path *geometry.Path, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:              ecs,
		lib:              lib,
		path:             path,
		rng:              rng,
		eventDispatcher:  eventDispatcher,
		spawnInterval:    config.SpawnIntervalTicks,
		healthMultiplier: 1,
	}
}

// SetHealthMultiplier sets the difficulty multiplier applied to every spawned enemy.
func (s *WaveSystem) SetHealthMultiplier(m float64) {
	s.healthMultiplier = m
}

// GenerateWave returns the spawn queue for a wave: count grows linearly with
// the wave index, each tier is drawn uniformly from the unlocked range, and
// the result is stable-sorted so the weakest enemies spawn first.
func (s *WaveSystem) GenerateWave(waveIndex int) []int {
	rules := s.lib.Waves
	count := rules.Count(waveIndex)
	highest := rules.HighestTier(waveIndex)

	queue := make([]int, count)
	for i := range queue {
		queue[i] = s.rng.Intn(highest + 1)
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i] < queue[j] })
	return queue
}

// StartWave запускает волну, если блокировка не выставлена.
// Повторный запрос во время волны — не ошибка, просто ничего не делает.
func (s *WaveSystem) StartWave() bool {
	wave := s.ecs.Wave
	if wave.Active {
		return false
	}

	wave.SpawnQueue = s.GenerateWave(wave.Number)
	wave.Active = true
	wave.SpawnTimer = 0

	log.WithFields(log.Fields{"wave": wave.Number, "enemies": len(wave.SpawnQueue)}).Info("Wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave.Number})
	return true
}

// Update выпускает следующего врага раз в spawnInterval тиков.
func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if !wave.Active || len(wave.SpawnQueue) == 0 {
		return
	}
	wave.SpawnTimer++
	if wave.SpawnTimer < s.spawnInterval {
		return
	}
	wave.SpawnTimer = 0

	tier := wave.SpawnQueue[0]
	wave.SpawnQueue = wave.SpawnQueue[1:]
	s.spawnEnemy(tier)
}

// CheckWaveEnd снимает блокировку, когда очередь пуста и врагов не осталось.
func (s *WaveSystem) CheckWaveEnd() bool {
	wave := s.ecs.Wave
	if !wave.Active || len(wave.SpawnQueue) > 0 || len(s.ecs.EnemyIDs) > 0 {
		return false
	}

	finished := wave.Number
	wave.Active = false
	wave.Number++
	wave.SpawnQueue = nil

	log.WithField("wave", finished).Info("Wave cleared")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})
	return true
}

func (s *WaveSystem) spawnEnemy(tier int) {
	def := s.lib.Enemy(tier)
	start := s.path.Start()
	hp := def.Health * s.healthMultiplier

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Waypoints[id] = &component.Waypoint{Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	radius := config.EnemyBaseRadius + float64(def.Tier)
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(radius),
	}
	s.ecs.AddEnemy(id, &component.Enemy{
		Tier:   def.Tier,
		Radius: radius,
		Reward: def.Reward,
	})

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyEvent{
		ID: id, Tier: def.Tier, Reward: def.Reward, X: start.X, Y: start.Y,
	}})
}
