// Package metrics экспортирует состояние игры в Prometheus.
package metrics

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/event"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "polarity"

// Collector хранит метрики в собственном реестре: счётчики растут по событиям,
// датчики обновляются снимком Stats раз в кадр.
type Collector struct {
	registry *prometheus.Registry

	score      prometheus.Gauge
	chain      prometheus.Gauge
	lives      prometheus.Gauge
	energy     *prometheus.GaugeVec
	entities   *prometheus.GaugeVec
	fps        prometheus.Gauge
	wave       prometheus.Gauge
	difficulty prometheus.Gauge

	kills          *prometheus.CounterVec
	absorbs        prometheus.Counter
	hits           prometheus.Counter
	bossesDefeated prometheus.Counter
	gamesOver      prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Текущий счёт.",
		}),
		chain: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain",
			Help:      "Длина текущей цепочки.",
		}),
		lives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lives",
			Help:      "Оставшиеся жизни.",
		}),
		energy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "energy",
			Help:      "Энергия по полярностям.",
		}, []string{"polarity"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Число объектов на поле по видам.",
		}, []string{"kind"}),
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps",
			Help:      "Кадров в секунду.",
		}),
		wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wave",
			Help:      "Номер волны.",
		}),
		difficulty: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "difficulty",
			Help:      "Уровень сложности.",
		}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_destroyed_total",
			Help:      "Уничтоженные враги.",
		}, []string{"polarity", "boss"}),
		absorbs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bullets_absorbed_total",
			Help:      "Пули, поглощённые щитом.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_hits_total",
			Help:      "Попадания по игроку.",
		}),
		bossesDefeated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bosses_defeated_total",
			Help:      "Побеждённые боссы.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Завершённые партии.",
		}),
	}
	c.registry.MustRegister(
		c.score, c.chain, c.lives, c.energy, c.entities, c.fps, c.wave, c.difficulty,
		c.kills, c.absorbs, c.hits, c.bossesDefeated, c.gamesOver,
	)
	return c
}

// Registry - реестр для тестов и встраивания.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler отдаёт /metrics из собственного реестра.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Attach подписывает счётчики на события игры.
func (c *Collector) Attach(d *event.Dispatcher) {
	d.Subscribe(event.EnemyDestroyed, c)
	d.Subscribe(event.BulletAbsorbed, c)
	d.Subscribe(event.PlayerHit, c)
	d.Subscribe(event.BossDefeated, c)
	d.Subscribe(event.GameOver, c)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data, ok := e.Data.(event.EnemyData)
		if !ok {
			return
		}
		boss := "false"
		if data.Boss {
			boss = "true"
		}
		c.kills.WithLabelValues(data.Polarity.String(), boss).Inc()
	case event.BulletAbsorbed:
		c.absorbs.Inc()
	case event.PlayerHit:
		c.hits.Inc()
	case event.BossDefeated:
		c.bossesDefeated.Inc()
	case event.GameOver:
		c.gamesOver.Inc()
	}
}

// Observe переносит снимок кадра в датчики.
func (c *Collector) Observe(s app.Stats) {
	c.score.Set(float64(s.Score))
	c.chain.Set(float64(s.Chain))
	c.lives.Set(float64(s.Lives))
	c.energy.WithLabelValues("WHITE").Set(s.WhiteEnergy)
	c.energy.WithLabelValues("BLACK").Set(s.BlackEnergy)
	c.entities.WithLabelValues("bullet").Set(float64(s.Bullets))
	c.entities.WithLabelValues("enemy").Set(float64(s.Enemies))
	c.entities.WithLabelValues("powerup").Set(float64(s.PowerUps))
	c.entities.WithLabelValues("total").Set(float64(s.Entities))
	c.fps.Set(float64(s.FPS))
	c.wave.Set(float64(s.Wave))
	c.difficulty.Set(float64(s.Difficulty))
}
