// internal/metrics/metrics.go
package metrics

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"go-card-defense/internal/event"
)

// Collector переводит игровые события в Prometheus-метрики.
// Подписывается на диспетчер уровня как обычный слушатель; у каждого
// Collector свой реестр, поэтому несколько уровней не конфликтуют.
type Collector struct {
	registry *prometheus.Registry

	wavesStarted  prometheus.Counter
	wavesCleared  prometheus.Counter
	spawned       *prometheus.CounterVec
	killed        *prometheus.CounterVec
	escaped       *prometheus.CounterVec
	shotsFired    prometheus.Counter
	shotsMissed   prometheus.Counter
	cardsPlayed   *prometheus.CounterVec
	energySpent   prometheus.Counter
	towersPlaced  *prometheus.CounterVec
	towerUpgrades prometheus.Counter
	liveEnemies   prometheus.Gauge
	currentWave   prometheus.Gauge
	outcome       *prometheus.GaugeVec
}

// NewCollector создаёт метрики и регистрирует их в собственном реестре.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		wavesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "waves_started_total",
			Help:      "Number of waves that began spawning.",
		}),
		wavesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "waves_cleared_total",
			Help:      "Number of waves fully killed or escaped.",
		}),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "enemies_spawned_total",
			Help:      "Enemies spawned, by definition.",
		}, []string{"enemy"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "enemies_killed_total",
			Help:      "Enemies killed by towers or cards, by definition.",
		}, []string{"enemy"}),
		escaped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "enemies_escaped_total",
			Help:      "Enemies that reached a goal, by definition.",
		}, []string{"enemy"}),
		shotsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "projectiles_fired_total",
			Help:      "Projectiles launched by towers.",
		}),
		shotsMissed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "projectiles_missed_total",
			Help:      "Projectiles that expired or arrived without a victim.",
		}),
		cardsPlayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "cards_played_total",
			Help:      "Cards played successfully, by card id.",
		}, []string{"card"}),
		energySpent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "energy_spent_total",
			Help:      "Energy paid for played cards.",
		}),
		towersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "towers_placed_total",
			Help:      "Towers built, by definition.",
		}, []string{"tower"}),
		towerUpgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tower_defense",
			Name:      "tower_upgrades_total",
			Help:      "Tower upgrades purchased.",
		}),
		liveEnemies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tower_defense",
			Name:      "enemies_alive",
			Help:      "Enemies currently on the map.",
		}),
		currentWave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tower_defense",
			Name:      "current_wave",
			Help:      "Number of the most recently started wave.",
		}),
		outcome: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tower_defense",
			Name:      "level_outcome",
			Help:      "Set to 1 for the final outcome once the level ends.",
		}, []string{"outcome"}),
	}

	c.registry.MustRegister(
		c.wavesStarted, c.wavesCleared,
		c.spawned, c.killed, c.escaped,
		c.shotsFired, c.shotsMissed,
		c.cardsPlayed, c.energySpent,
		c.towersPlaced, c.towerUpgrades,
		c.liveEnemies, c.currentWave, c.outcome,
	)
	return c
}

// Registry returns the collector's registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдаёт метрики в текстовом формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// WriteText dumps every metric in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Attach подписывает коллектор на все события диспетчера.
func (c *Collector) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		c.wavesStarted.Inc()
		if w, ok := e.Data.(event.WaveData); ok {
			c.currentWave.Set(float64(w.Number))
		}
	case event.WaveCleared:
		c.wavesCleared.Inc()
	case event.EnemySpawned:
		c.spawned.WithLabelValues(enemyLabel(e.Data)).Inc()
		c.liveEnemies.Inc()
	case event.EnemyKilled:
		c.killed.WithLabelValues(enemyLabel(e.Data)).Inc()
		c.liveEnemies.Dec()
	case event.EnemyEscaped:
		c.escaped.WithLabelValues(enemyLabel(e.Data)).Inc()
		c.liveEnemies.Dec()
	case event.ProjectileFired:
		c.shotsFired.Inc()
	case event.ProjectileMissed:
		c.shotsMissed.Inc()
	case event.CardPlayed:
		if d, ok := e.Data.(event.CardData); ok {
			c.cardsPlayed.WithLabelValues(d.CardID).Inc()
			c.energySpent.Add(float64(d.Cost))
		}
	case event.TowerPlaced:
		if d, ok := e.Data.(event.TowerData); ok {
			c.towersPlaced.WithLabelValues(d.DefID).Inc()
		}
	case event.TowerUpgraded:
		c.towerUpgrades.Inc()
	case event.LevelEnded:
		c.liveEnemies.Set(0)
		if s, ok := e.Data.(fmt.Stringer); ok {
			c.outcome.WithLabelValues(s.String()).Set(1)
		}
	}
}

func enemyLabel(data interface{}) string {
	if d, ok := data.(event.EnemyData); ok && d.DefID != "" {
		return d.DefID
	}
	return "unknown"
}
