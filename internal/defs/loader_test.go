package defs

import (
	"go-polarity-shooter/internal/component"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepTables восстанавливает таблицы после теста.
func keepTables(t *testing.T) {
	sizes, specials := EnemySizes, SpecialDefs
	t.Cleanup(func() { EnemySizes, SpecialDefs = sizes, specials })
}

func writeDefs(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEnemyDefinitions(t *testing.T) {
	keepTables(t)

	path := writeDefs(t, `{"sizes":{"large":{"radius":30,"value":400,"speed_factor":0.7,"fire_rate_factor":0.5,"particles":30}},
"specials":{"tank":{"hp":5,"speed_mul":0.5,"bullet_speed_mul":1,"value_mul":3,"radius_mul":1.5,"fires":true,"damage":1}}}`)

	require.NoError(t, LoadEnemyDefinitions(path))
	assert.Equal(t, 30.0, SizeDef(component.SizeLarge).Radius)
	assert.Equal(t, 400, SizeDef(component.SizeLarge).Value)
	assert.Equal(t, 5, SpecialDefs[component.SpecialTank].HP)
}

func TestLoadEnemyDefinitions_PartialOverrideKeepsOtherFields(t *testing.T) {
	keepTables(t)
	before := SizeDef(component.SizeMedium)
	sniper := SpecialDefs[component.SpecialSniper]

	require.NoError(t, LoadEnemyDefinitions(writeDefs(t, `{"sizes":{"medium":{"radius":30}},"specials":{"sniper":{"hp":2}}}`)))

	medium := SizeDef(component.SizeMedium)
	assert.Equal(t, 30.0, medium.Radius)
	assert.Equal(t, before.Value, medium.Value)
	assert.Equal(t, before.SpeedFactor, medium.SpeedFactor)
	assert.Equal(t, before.FireRateFactor, medium.FireRateFactor)
	assert.Equal(t, before.Particles, medium.Particles)

	sniper.HP = 2
	assert.Equal(t, sniper, SpecialDefs[component.SpecialSniper])
}

func TestLoadEnemyDefinitions_FailedLoadChangesNothing(t *testing.T) {
	keepTables(t)
	before := Current()

	err := LoadEnemyDefinitions(writeDefs(t, `{"sizes":{"medium":{"radius":30}},"specials":{"bogus":{}}}`))
	assert.ErrorContains(t, err, `unknown special enemy "bogus"`)
	assert.Equal(t, before, Current())

	err = LoadEnemyDefinitions(writeDefs(t, `{"sizes":{"small":{"radius":12},"large":{"radius":-1}}}`))
	assert.ErrorContains(t, err, "radius must be positive")
	assert.Equal(t, before, Current())
}

func TestLoadEnemyDefinitions_Errors(t *testing.T) {
	keepTables(t)
	dir := t.TempDir()

	assert.Error(t, LoadEnemyDefinitions(filepath.Join(dir, "missing.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"sizes":{"huge":{"radius":1}}}`), 0o644))
	assert.ErrorContains(t, LoadEnemyDefinitions(bad), "unknown enemy size")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o644))
	assert.ErrorContains(t, LoadEnemyDefinitions(broken), "unmarshal")
}

func TestApply_RoundTripsCurrent(t *testing.T) {
	keepTables(t)
	d := Current()
	d.Sizes["small"] = EnemySizeDefinition{Radius: 9, Value: 60, SpeedFactor: 1, FireRateFactor: 1, Particles: 4}

	require.NoError(t, Apply(d))
	assert.Equal(t, 9.0, SizeDef(component.SizeSmall).Radius)
	assert.Equal(t, d, Current())

	before := Current()
	assert.Error(t, Apply(Definitions{Sizes: map[string]EnemySizeDefinition{"medium": {}}}))
	assert.Equal(t, before, Current())
	assert.True(t, Definitions{}.IsEmpty())
}

func TestSizeTable(t *testing.T) {
	assert.Nil(t, SizeTable(1))
	assert.Len(t, SizeTable(2), 2)
	table := SizeTable(5)
	require.Len(t, table, 3)
	assert.Equal(t, component.SizeLarge, table[0].Size)
}

func TestAttacksForPhase(t *testing.T) {
	assert.Equal(t, []BossAttack{AttackSpiral, AttackBurst}, AttacksForPhase(1))
	assert.Contains(t, AttacksForPhase(2), AttackAimed)
	assert.Len(t, AttacksForPhase(3), 5)
}
