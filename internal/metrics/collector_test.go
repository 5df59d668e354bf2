package metrics

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Observe(t *testing.T) {
	c := NewCollector()
	c.Observe(app.Stats{
		Score:       1200,
		Chain:       4,
		Lives:       2,
		WhiteEnergy: 40,
		BlackEnergy: 10,
		Bullets:     17,
		Enemies:     3,
		Entities:    21,
		FPS:         60,
		Wave:        7,
		Difficulty:  1,
	})

	assert.Equal(t, 1200.0, testutil.ToFloat64(c.score))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.chain))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.lives))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.energy.WithLabelValues("WHITE")))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.energy.WithLabelValues("BLACK")))
	assert.Equal(t, 17.0, testutil.ToFloat64(c.entities.WithLabelValues("bullet")))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.wave))
}

func TestCollector_CountsEvents(t *testing.T) {
	c := NewCollector()
	d := event.NewDispatcher()
	c.Attach(d)

	d.Emit(event.EnemyDestroyed, event.EnemyData{Polarity: component.White})
	d.Emit(event.EnemyDestroyed, event.EnemyData{Polarity: component.White})
	d.Emit(event.EnemyDestroyed, event.EnemyData{Polarity: component.Black, Boss: true})
	d.Emit(event.EnemyDestroyed, "garbage")
	d.Emit(event.BulletAbsorbed, nil)
	d.Emit(event.PlayerHit, nil)
	d.Emit(event.BossDefeated, nil)
	d.Emit(event.GameOver, event.GameOverData{})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.kills.WithLabelValues("WHITE", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.kills.WithLabelValues("BLACK", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.absorbs))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.bossesDefeated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.gamesOver))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.Observe(app.Stats{Score: 5})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "polarity_score 5"))
}

func TestCollector_FollowsLiveGame(t *testing.T) {
	g := app.NewGame(app.Options{})
	c := NewCollector()
	c.Attach(g.EventDispatcher)
	g.StartGame()
	for i := 0; i < 120; i++ {
		g.Update(1.0 / 60)
	}
	c.Observe(g.Stats())

	assert.Equal(t, float64(g.SpawnSystem.Wave()), testutil.ToFloat64(c.wave))
	assert.Equal(t, float64(g.Player().Lives), testutil.ToFloat64(c.lives))
}
