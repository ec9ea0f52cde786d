package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/pkg/gridmap"
)

type fakePlayer struct {
	gold, score, health int
}

func (p *fakePlayer) AddReward(n int)  { p.gold += n; p.score += n }
func (p *fakePlayer) TakeDamage(n int) { p.health = max(0, p.health-n) }
func (p *fakePlayer) IsAlive() bool    { return p.health > 0 }

// straight path along y=0, 100px segments
func straightPath(n int) []component.Position {
	path := make([]component.Position, n)
	for i := range path {
		path[i] = component.Position{X: float64(i) * 100}
	}
	return path
}

func addEnemy(reg *entity.Registry, pos component.Position, health, armor int) *entity.Entity {
	e := &entity.Entity{
		Kind:     entity.KindEnemy,
		Position: pos,
		Health:   &component.Health{Current: health, Max: health},
		Shape:    component.Circle{Radius: 10},
		Enemy:    &component.Enemy{DefID: "E", Path: straightPath(5), Armor: armor, Reward: 7},
	}
	reg.Add(e, entity.GroupEnemies)
	return e
}

func addTower(reg *entity.Registry, pos component.Position, damage int, rng, rate float64) *entity.Entity {
	e := &entity.Entity{
		Kind:     entity.KindTower,
		Position: pos,
		Health:   &component.Health{Current: 1, Max: 1},
		Tower: &component.Tower{
			DefID: "T", Damage: damage, Range: rng, FireRate: rate,
			LastShot: component.NeverFired, ProjectileSpeed: 200,
		},
	}
	reg.Add(e, entity.GroupTowers)
	return e
}

type combatRig struct {
	reg    *entity.Registry
	d      *event.Dispatcher
	player *fakePlayer
	combat *CombatSystem
	events []event.Event
}

func newCombatRig(t *testing.T, s config.Settings) *combatRig {
	t.Helper()
	r := &combatRig{reg: entity.NewRegistry(), d: event.NewDispatcher(), player: &fakePlayer{health: 10}}
	r.d.SubscribeAll(event.ListenerFunc(func(e event.Event) { r.events = append(r.events, e) }))
	NewPlayerSystem(r.player, nil, 1, r.d)
	r.combat = NewCombatSystem(r.reg, r.d, s, nil)
	r.reg.Handle(entity.KindProjectile, NewProjectileSystem(r.d, s.Combat.HitRadius))
	return r
}

func (r *combatRig) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Врагов 3, интервал 1с, шаг 0.5с: третий появляется ровно на t=3.0.
func TestWaveSystem_SpawnTiming(t *testing.T) {
	s := config.Default()
	waves := []defs.WaveDefinition{{Enemies: []defs.WaveGroup{{EnemyID: "E", Count: 3}}, Count: 3, SpawnInterval: 1.0}}
	enemies := map[string]defs.EnemyDefinition{"E": {ID: "E", Health: 10, Speed: 10}}
	ws := NewWaveSystem(waves, enemies, [][]component.Position{straightPath(3)}, s, event.NewDispatcher(), nil)

	require.True(t, ws.StartWave(1))
	spawnedAt := map[int]float64{}
	total := 0
	for tick := 1; tick <= 6; tick++ {
		for range ws.Update(0.5) {
			total++
			spawnedAt[total] = float64(tick) * 0.5
		}
		if tick < 6 {
			assert.Equal(t, WaveSpawning, ws.State(), "tick %d", tick)
		}
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, map[int]float64{1: 1.0, 2: 2.0, 3: 3.0}, spawnedAt)
	assert.Equal(t, WaveWaitingForClear, ws.State())
	assert.Empty(t, ws.Update(10), "no spawns after the wave is done")
}

func TestWaveSystem_RemainderCarried(t *testing.T) {
	s := config.Default()
	waves := []defs.WaveDefinition{{Enemies: []defs.WaveGroup{{EnemyID: "E", Count: 5}}, Count: 5, SpawnInterval: 1.0}}
	enemies := map[string]defs.EnemyDefinition{"E": {ID: "E", Health: 10, Speed: 10}}
	ws := NewWaveSystem(waves, enemies, [][]component.Position{straightPath(3)}, s, event.NewDispatcher(), nil)
	require.True(t, ws.StartWave(1))

	total := len(ws.Update(2.5))
	assert.Equal(t, 2, total, "one large dt spawns one enemy per whole interval")
	total += len(ws.Update(0.5))
	assert.Equal(t, 3, total, "the 0.5s remainder was kept")
}

func TestWaveSystem_StateMachine(t *testing.T) {
	s := config.Default()
	waves := []defs.WaveDefinition{
		{Enemies: []defs.WaveGroup{{EnemyID: "A", Count: 1}, {EnemyID: "B", Count: 1}}, Count: 2, SpawnInterval: 1},
		{Enemies: []defs.WaveGroup{{EnemyID: "A", Count: 1}}, Count: 1, SpawnInterval: 1},
	}
	enemies := map[string]defs.EnemyDefinition{
		"A": {ID: "A", Health: 10, Speed: 10, Reward: 1},
		"B": {ID: "B", Health: 20, Speed: 5, Armor: 2},
	}
	spawnA := straightPath(3)
	spawnB := []component.Position{{X: 0, Y: 500}, {X: 100, Y: 500}}
	ws := NewWaveSystem(waves, enemies, [][]component.Position{spawnA, spawnB}, s, event.NewDispatcher(), nil)

	assert.False(t, ws.StartWave(2), "waves start in order")
	assert.False(t, ws.StartWave(3))
	require.True(t, ws.StartWave(1))
	assert.False(t, ws.StartWave(2), "only from idle")

	got := ws.Update(2)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Enemy.DefID)
	assert.Equal(t, "B", got[1].Enemy.DefID)
	assert.Equal(t, spawnA[0], got[0].Position, "spawn points round robin")
	assert.Equal(t, spawnB[0], got[1].Position)
	assert.Equal(t, 12, got[0].Health.Max, "health scaled by 1.2^1")
	assert.InDelta(t, 10.5, got[0].Enemy.Speed, 1e-9)
	assert.Equal(t, 2, got[1].Enemy.Armor)

	assert.True(t, ws.MarkCleared())
	assert.Equal(t, WaveIdle, ws.State())
	assert.False(t, ws.MarkCleared())

	require.True(t, ws.StartWave(2))
	ws.Update(1)
	require.True(t, ws.MarkCleared())
	assert.Equal(t, WaveComplete, ws.State())
	assert.Equal(t, WaveInfo{Number: 2, Total: 2, Spawned: 1, Size: 1, State: WaveComplete}, ws.Info())
}

func TestWaveSystem_DifficultyScaling(t *testing.T) {
	s := config.Default().WithDifficulty("hard")
	waves := []defs.WaveDefinition{{Enemies: []defs.WaveGroup{{EnemyID: "A", Count: 5}}, Count: 5, SpawnInterval: 1}}
	enemies := map[string]defs.EnemyDefinition{"A": {ID: "A", Health: 100, Speed: 10}}
	ws := NewWaveSystem(waves, enemies, [][]component.Position{straightPath(2)}, s, event.NewDispatcher(), nil)
	require.True(t, ws.StartWave(1))
	assert.Equal(t, 6, ws.Info().Size)

	got := ws.Update(1)
	require.Len(t, got, 1)
	assert.Equal(t, 156, got[0].Health.Max, "100 * 1.2 * 1.3")
}

// Башня: дальность 100, 1 выстрел/с, враг стоит на расстоянии 50.
func TestCombatSystem_FireRate(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	tower := addTower(r.reg, component.Position{}, 1, 100, 1.0)
	addEnemy(r.reg, component.Position{X: 50}, 1000, 0)

	var shots []float64
	for _, now := range []float64{0, 0.5, 1.0, 1.5} {
		if r.combat.Update(now) > 0 {
			shots = append(shots, now)
		}
	}
	assert.Equal(t, []float64{0, 1.0}, shots)
	assert.Equal(t, 1.0, tower.Tower.LastShot)
}

func TestCombatSystem_FireRateFragmentedDt(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	addTower(r.reg, component.Position{}, 1, 100, 1.0)
	addEnemy(r.reg, component.Position{X: 50}, 1000, 0)

	now := 0.0
	shots := 0
	var at []float64
	for i := 0; i < 30; i++ {
		if r.combat.Update(now) > 0 {
			shots++
			at = append(at, now)
		}
		now += 0.1
	}
	assert.Equal(t, 3, shots)
	assert.InDelta(t, 1.0, at[1], 1e-6)
	assert.InDelta(t, 2.0, at[2], 1e-6)
}

func TestCombatSystem_TargetTieBreak(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	tower := addTower(r.reg, component.Position{}, 1, 100, 1.0)

	far := addEnemy(r.reg, component.Position{X: 500}, 10, 0) // вне радиуса
	far.Enemy.Progress = 4
	a := addEnemy(r.reg, component.Position{X: 40}, 10, 0)
	a.Enemy.Progress = 1.5
	b := addEnemy(r.reg, component.Position{X: 30}, 10, 0)
	b.Enemy.Progress = 1.5
	c := addEnemy(r.reg, component.Position{X: 20}, 10, 0)
	c.Enemy.Progress = 0.5

	enemies := r.reg.Live(entity.GroupEnemies)
	assert.Same(t, a, SelectTarget(tower, enemies), "greatest progress, then lowest id")

	a.Dead = true
	assert.Same(t, b, SelectTarget(tower, r.reg.Live(entity.GroupEnemies)))
}

func TestCombatSystem_ProjectileCap(t *testing.T) {
	s := config.Default()
	s.Performance.MaxProjectiles = 1
	r := newCombatRig(t, s)
	t1 := addTower(r.reg, component.Position{}, 1, 100, 1.0)
	t2 := addTower(r.reg, component.Position{Y: 10}, 1, 100, 1.0)
	addEnemy(r.reg, component.Position{X: 50}, 1000, 0)

	assert.Equal(t, 1, r.combat.Update(0))
	assert.Equal(t, 0.0, t1.Tower.LastShot)
	assert.Equal(t, component.NeverFired, t2.Tower.LastShot, "held fire keeps the cooldown ready")
}

// Броня 5, урон 10: здоровье падает ровно на 5.
func TestCombatSystem_ArmorReducesDamage(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	addTower(r.reg, component.Position{}, 10, 100, 1.0)
	enemy := addEnemy(r.reg, component.Position{X: 50}, 100, 5)

	r.combat.Update(0)
	r.reg.UpdateAll(1.0) // 200px/s, долетает за один шаг
	r.combat.ResolveImpacts(r.reg.CheckCollisions(entity.GroupProjectiles, entity.GroupEnemies))
	r.reg.CleanupDead()

	assert.Equal(t, 95, enemy.Health.Current)
	assert.Equal(t, 0, r.reg.CountLive(entity.GroupProjectiles))
}

func TestApplyDamage_FloorAndKill(t *testing.T) {
	d := event.NewDispatcher()
	p := &fakePlayer{health: 1}
	NewPlayerSystem(p, nil, 1, d)
	reg := entity.NewRegistry()

	tank := addEnemy(reg, component.Position{}, 10, 50)
	dealt, killed := ApplyDamage(tank, 10, d)
	assert.Equal(t, 0, dealt)
	assert.False(t, killed)
	assert.Equal(t, 10, tank.Health.Current)

	weak := addEnemy(reg, component.Position{}, 3, 0)
	dealt, killed = ApplyDamage(weak, 10, d)
	assert.Equal(t, 3, dealt)
	assert.True(t, killed)
	assert.Equal(t, 0, weak.Health.Current, "never negative")
	assert.True(t, weak.Dead)
	assert.Equal(t, 7, p.gold, "reward credited immediately")
	assert.Equal(t, 7, p.score)

	_, killed = ApplyDamage(weak, 10, d)
	assert.False(t, killed, "dead enemies cannot be killed twice")
	assert.Equal(t, 7, p.gold)
}

func TestCombatSystem_StaleTargetMisses(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	addTower(r.reg, component.Position{}, 10, 100, 1.0)
	target := addEnemy(r.reg, component.Position{X: 80}, 100, 0)

	r.combat.Update(0)
	target.Dead = true
	r.reg.CleanupDead()
	// Другой враг стоит в точке попадания, но цель уже исчезла.
	bystander := addEnemy(r.reg, component.Position{X: 80}, 100, 0)

	r.reg.UpdateAll(1.0)
	bystander.Position = component.Position{X: 80}
	r.combat.ResolveImpacts(r.reg.CheckCollisions(entity.GroupProjectiles, entity.GroupEnemies))

	assert.Equal(t, 100, bystander.Health.Current)
	assert.Equal(t, 1, r.count(event.ProjectileMissed))
}

func TestCombatSystem_MissWhenTargetMovedAway(t *testing.T) {
	s := config.Default()
	r := newCombatRig(t, s)
	addTower(r.reg, component.Position{}, 10, 100, 1.0)
	target := addEnemy(r.reg, component.Position{X: 80}, 100, 0)

	r.combat.Update(0)
	r.reg.UpdateAll(1.0)
	target.Position = component.Position{X: 300}
	r.combat.ResolveImpacts(r.reg.CheckCollisions(entity.GroupProjectiles, entity.GroupEnemies))
	r.reg.CleanupDead()

	assert.Equal(t, 100, target.Health.Current)
	assert.Equal(t, 1, r.count(event.ProjectileMissed))
	assert.Equal(t, 0, r.reg.CountLive(entity.GroupProjectiles))
}

func TestProjectileSystem_TTLExpiry(t *testing.T) {
	d := event.NewDispatcher()
	ps := NewProjectileSystem(d, 8)
	e := &entity.Entity{
		ID:   1,
		Kind: entity.KindProjectile,
		Projectile: &component.Projectile{
			TargetPoint: component.Position{X: 1000},
			Speed:       100,
			TTL:         1.0,
		},
	}
	for i := 0; i < 4; i++ {
		ps.UpdateEntity(e, 0.25)
	}
	assert.False(t, e.Dead, "alive at exactly its TTL")
	assert.InDelta(t, 100.0, e.Position.X, 1e-9)

	ps.UpdateEntity(e, 0.25)
	assert.True(t, e.Dead)
	assert.False(t, e.Projectile.Arrived)
}

func TestProjectileSystem_SnapsWithinHitRadius(t *testing.T) {
	ps := NewProjectileSystem(event.NewDispatcher(), 8)
	e := &entity.Entity{
		Kind: entity.KindProjectile,
		Projectile: &component.Projectile{
			TargetPoint: component.Position{X: 100},
			Speed:       95,
			TTL:         3,
		},
	}
	ps.UpdateEntity(e, 1)
	assert.True(t, e.Projectile.Arrived)
	assert.Equal(t, component.Position{X: 100}, e.Position)
}

func TestMovementSystem_PathAndEscape(t *testing.T) {
	d := event.NewDispatcher()
	p := &fakePlayer{health: 5}
	NewPlayerSystem(p, nil, 2, d)
	ms := NewMovementSystem(d)

	reg := entity.NewRegistry()
	e := addEnemy(reg, component.Position{}, 10, 0)
	e.Enemy.Path = straightPath(3) // 0, 100, 200
	e.Enemy.Speed = 50

	ms.UpdateEntity(e, 1)
	assert.InDelta(t, 0.5, e.Enemy.Progress, 1e-9)
	assert.InDelta(t, 50.0, e.Position.X, 1e-9)

	ms.UpdateEntity(e, 2)
	assert.InDelta(t, 1.5, e.Enemy.Progress, 1e-9)
	assert.False(t, e.Dead)

	ms.UpdateEntity(e, 10)
	assert.Equal(t, 2.0, e.Enemy.Progress, "progress stops at path end")
	assert.True(t, e.Enemy.Escaped)
	assert.True(t, e.Dead)
	assert.Equal(t, 3, p.health)
	assert.Equal(t, 0, p.gold, "no reward for escapes")
}

func TestSlows_StrongestWins(t *testing.T) {
	enemy := &component.Enemy{}
	ApplySlow(enemy, component.SlowSpec{Duration: 1, Intensity: 0.3})
	ApplySlow(enemy, component.SlowSpec{Duration: 3, Intensity: 0.5})
	assert.InDelta(t, 0.5, SpeedMultiplier(enemy), 1e-9)

	TickSlows(enemy, 1)
	require.Len(t, enemy.Slows, 1, "weak slow expired on its own timer")
	assert.InDelta(t, 0.5, SpeedMultiplier(enemy), 1e-9)

	TickSlows(enemy, 2)
	assert.Empty(t, enemy.Slows)
	assert.Equal(t, 1.0, SpeedMultiplier(enemy))
}

func TestAreaAttackSystem(t *testing.T) {
	d := event.NewDispatcher()
	p := &fakePlayer{health: 5}
	NewPlayerSystem(p, nil, 1, d)
	reg := entity.NewRegistry()
	area := NewAreaAttackSystem(reg, d)

	near := addEnemy(reg, component.Position{X: 10}, 20, 0)
	armored := addEnemy(reg, component.Position{X: 20}, 20, 15)
	far := addEnemy(reg, component.Position{X: 200}, 20, 0)

	assert.Equal(t, 2, area.ApplyAreaDamage(component.Position{}, 50, 20))
	assert.True(t, near.Dead)
	assert.Equal(t, 15, armored.Health.Current)
	assert.Equal(t, 20, far.Health.Current)
	assert.Equal(t, 7, p.gold)

	assert.Equal(t, 1, area.ApplySlowArea(component.Position{}, 50, component.SlowSpec{Duration: 2, Intensity: 0.4}))
	assert.Len(t, armored.Enemy.Slows, 1)
	assert.Empty(t, far.Enemy.Slows)
}

func TestVisualEffects(t *testing.T) {
	reg := entity.NewRegistry()
	area := NewAreaAttackSystem(reg, event.NewDispatcher())
	fx := NewVisualEffectSystem()
	area.AttachEffects(fx)

	area.ApplyAreaDamage(component.Position{X: 5}, 40, 10)
	area.ApplySlowArea(component.Position{X: 5}, 60, component.SlowSpec{Duration: 1, Intensity: 0.5})
	got := fx.Effects()
	require.Len(t, got, 2)
	assert.Equal(t, EffectBlast, got[0].Kind)
	assert.Equal(t, EffectFrost, got[1].Kind)
	assert.Equal(t, 0.0, got[0].Radius())

	fx.Update(0.2)
	assert.InDelta(t, 20, fx.Effects()[0].Radius(), 1e-9)

	fx.Update(0.2)
	assert.Empty(t, fx.Effects())
}

func newTowerRig(t *testing.T) (*TowerSystem, *gridmap.TileMap, *entity.Registry) {
	t.Helper()
	tm, err := gridmap.New(3, 2, [][]int{{5, 5, 0}, {3, 1, 4}}, nil, nil, nil)
	require.NoError(t, err)
	reg := entity.NewRegistry()
	return NewTowerSystem(reg, tm, event.NewDispatcher(), config.Default()), tm, reg
}

func TestTowerSystem_Build(t *testing.T) {
	ts, tm, reg := newTowerRig(t)
	def := defs.TowerDefinition{ID: "T", Damage: 10, Range: 100, FireRate: 1}

	tower, err := ts.Build(def, gridmap.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, component.Position{X: 16, Y: 16}, tower.Position)
	assert.True(t, tm.IsOccupied(0, 0))
	assert.Equal(t, 1, reg.CountLive(entity.GroupTowers))

	_, err = ts.Build(def, gridmap.Cell{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	_, err = ts.Build(def, gridmap.Cell{X: 2, Y: 0})
	assert.ErrorIs(t, err, ErrSlotUnavailable, "grass is not a slot")

	found, ok := ts.TowerAt(gridmap.Cell{X: 0, Y: 0})
	assert.True(t, ok)
	assert.Same(t, tower, found)
	_, ok = ts.TowerAt(gridmap.Cell{X: 1, Y: 0})
	assert.False(t, ok, "free slot has no tower")
}

func TestTowerSystem_Upgrade(t *testing.T) {
	ts, _, _ := newTowerRig(t)
	tower, err := ts.Build(defs.TowerDefinition{ID: "T", Damage: 10, Range: 100, FireRate: 1}, gridmap.Cell{X: 1, Y: 0})
	require.NoError(t, err)

	assert.Equal(t, 20, ts.UpgradeCost(0))
	assert.Equal(t, 30, ts.UpgradeCost(1))
	assert.Equal(t, 45, ts.UpgradeCost(2))

	gold := 25
	spend := func(n int) bool {
		if n > gold {
			return false
		}
		gold -= n
		return true
	}

	require.NoError(t, ts.Upgrade(tower, spend))
	assert.Equal(t, 5, gold)
	assert.Equal(t, 1, tower.Tower.UpgradeLevel)
	assert.Equal(t, 13, tower.Tower.Damage)
	assert.InDelta(t, 110.0, tower.Tower.Range, 1e-9)

	assert.ErrorIs(t, ts.Upgrade(tower, spend), ErrInsufficientGold)
	assert.Equal(t, 1, tower.Tower.UpgradeLevel)

	gold = 1000
	require.NoError(t, ts.Upgrade(tower, spend))
	require.NoError(t, ts.Upgrade(tower, spend))
	assert.ErrorIs(t, ts.Upgrade(tower, spend), ErrMaxLevel)
}

func TestStateSystem(t *testing.T) {
	s := config.Default()
	s.Wave.FirstWaveDelay = 2
	s.Wave.TimeBetweenWaves = 1
	d := event.NewDispatcher()
	reg := entity.NewRegistry()
	p := &fakePlayer{health: 3}
	waves := []defs.WaveDefinition{{Enemies: []defs.WaveGroup{{EnemyID: "A", Count: 1}}, Count: 1, SpawnInterval: 1}}
	ws := NewWaveSystem(waves, map[string]defs.EnemyDefinition{"A": {ID: "A", Health: 1, Speed: 1}},
		[][]component.Position{straightPath(2)}, s, d, nil)
	ss := NewStateSystem(reg, ws, p, d, s)

	assert.Equal(t, 1.5, ss.UpdateWaveTimer(1.5))
	assert.Equal(t, WaveIdle, ws.State())
	assert.InDelta(t, 0.5, ss.Countdown(), 1e-9)
	assert.InDelta(t, 0, ss.UpdateWaveTimer(0.5), 1e-9, "wave starts exactly at the end of the tick")
	assert.Equal(t, WaveSpawning, ws.State())
	assert.Equal(t, 1.0, ss.Countdown())

	assert.Equal(t, component.Running, ss.Evaluate())
	for _, e := range ws.Update(1) {
		reg.Add(e, entity.GroupEnemies)
	}
	assert.Equal(t, component.Running, ss.Evaluate(), "enemy still alive")

	for _, e := range reg.Live(entity.GroupEnemies) {
		e.Dead = true
	}
	assert.Equal(t, component.Won, ss.Evaluate())
	assert.Equal(t, WaveComplete, ws.State())

	p.health = 0
	assert.Equal(t, component.Won, ss.Evaluate(), "outcome is final")
}

func TestStateSystem_WaveTimerOvershoot(t *testing.T) {
	s := config.Default()
	s.Wave.FirstWaveDelay = 0.02
	d := event.NewDispatcher()
	ws := NewWaveSystem(defs.GenerateWaves(s), map[string]defs.EnemyDefinition{defs.DefaultEnemyID: defs.DefaultEnemy(s)},
		[][]component.Position{straightPath(2)}, s, d, nil)
	ss := NewStateSystem(entity.NewRegistry(), ws, &fakePlayer{health: 1}, d, s)

	assert.InDelta(t, 0.03, ss.UpdateWaveTimer(0.05), 1e-9)
	assert.Equal(t, WaveSpawning, ws.State())
	assert.Equal(t, 0.25, ss.UpdateWaveTimer(0.25), "running wave gets the whole tick")
}

func TestStateSystem_Lose(t *testing.T) {
	s := config.Default()
	d := event.NewDispatcher()
	var ended []component.Outcome
	d.Subscribe(event.LevelEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e.Data.(component.Outcome))
	}))
	ws := NewWaveSystem(defs.GenerateWaves(s), map[string]defs.EnemyDefinition{}, [][]component.Position{straightPath(2)}, s, d, nil)
	p := &fakePlayer{health: 0}
	ss := NewStateSystem(entity.NewRegistry(), ws, p, d, s)

	assert.Equal(t, component.Lost, ss.Evaluate())
	assert.Equal(t, component.Lost, ss.Evaluate())
	assert.Equal(t, []component.Outcome{component.Lost}, ended)
}

func TestStateSystem_ManualStart(t *testing.T) {
	s := config.Default()
	s.Wave.AutoStart = false
	d := event.NewDispatcher()
	ws := NewWaveSystem(defs.GenerateWaves(s), map[string]defs.EnemyDefinition{defs.DefaultEnemyID: defs.DefaultEnemy(s)},
		[][]component.Position{straightPath(2)}, s, d, nil)
	ss := NewStateSystem(entity.NewRegistry(), ws, &fakePlayer{health: 1}, d, s)

	ss.UpdateWaveTimer(60)
	assert.Equal(t, WaveIdle, ws.State(), "no countdown without auto start")
	assert.Zero(t, ss.Countdown())

	require.True(t, ss.StartNextWave())
	assert.Equal(t, WaveSpawning, ws.State())
	assert.False(t, ss.StartNextWave(), "only from idle")
}
