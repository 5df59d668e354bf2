// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 720
	MaxDeltaTime = 0.1

	// Игровое поле в мировых координатах, центр в (0,0), ось Y вверх.
	PlayAreaWidth  = 400.0
	PlayAreaHeight = 600.0
	PlayAreaLeft   = -PlayAreaWidth / 2
	PlayAreaRight  = PlayAreaWidth / 2
	PlayAreaTop    = PlayAreaHeight / 2
	PlayAreaBottom = -PlayAreaHeight / 2

	DefaultSeed   = 12345
	StartingLives = 3
	MaxLives      = 5
	MaxEnergy     = 100.0
	AbsorbEnergy  = 2.0

	PlayerSpeed             = 150.0
	PlayerHitboxRadius      = 4.0
	PlayerVisualRadius      = 15.0
	PlayerShieldRadius      = PlayerVisualRadius + 10
	PlayerFireRate          = 5.0 // выстрелов в секунду
	PlayerBulletSpeed       = 300.0
	PlayerBulletDamage      = 2 // урон по врагу при попадании
	PlayerMoveMargin        = 5.0
	PlayerStartX            = 0.0
	PlayerStartY            = -200.0
	PlayerInvincibility     = 1.5
	RapidFireDuration       = 5.0
	SpecialWeaponCost       = 100.0
	SpecialWeaponBulletGain = 10

	PlayerBulletRadius = 4.0
	EnemyBulletRadius  = 3.0
	BulletCullMargin   = 50.0

	EnemyBaseSpeed       = 50.0
	EnemyBaseBulletSpeed = 75.0
	EnemyRotationSpeed   = 3.0 // рад/с
	EnemyCullMargin      = 150.0
	EnemyKnockback       = 15.0
	SpawnMargin          = 30.0
	DodgeRange           = 50.0
	DodgeCooldown        = 0.5

	BaseSpawnInterval = 3.0
	MinSpawnInterval  = 2.0
	SpawnIntervalStep = 0.1
	ScoreThreshold    = 5000
	BossWaveInterval  = 10
	RestartSpawnDelay = 2.0
	SpecialEnemyWave  = 5
	SpecialChance     = 0.2

	BossRadius         = 40.0
	BossSpeed          = 30.0
	BossBaseHP         = 50
	BossHPPerTier      = 30
	BossBaseValue      = 5000
	BossValuePerTier   = 2000
	BossAttackInterval = 2.0
	BossTelegraphDelay = 0.5
	BossRingDelay      = 0.2

	BaseEnemyScore     = 100
	DistanceBonusRatio = 0.7
	DistanceBonusRange = 400.0
	DistanceBonus      = 1.5
	CloseRange         = 50.0
	CloseRangeBonus    = 2.0
	PopupLifetime      = 1.0
	PopupRiseSpeed     = 50.0

	ChainLength = 3

	PowerUpRadius     = 12.0
	PowerUpFallSpeed  = 50.0
	PowerUpLifetime   = 10.0
	PowerUpDropChance = 0.15
	EnergyPowerUp     = 30.0
	ScorePowerUp      = 500

	HitFreezeDuration = 0.05
	HitFreezeScale    = 0.1
	FPSWindow         = 0.5
	TargetFPS         = 60

	// Тряска камеры: сила при поглощении и попадании, затухание за кадр.
	AbsorbShake = 0.5
	HitShake    = 5.0
	ShakeDecay  = 0.9

	DangerLives   = 1
	DangerBullets = 80
	MusicBullets  = 100

	MaxBullets = 600
	MaxEffects = 200
	MaxWrecks  = 40
	MaxPopups  = 64

	BackgroundScrollSpeed = 20.0
	EffectLifetime        = 0.4
	ExplosionLifetime     = 0.8
)

var (
	BackgroundColor = color.RGBA{12, 12, 20, 255}
	PlayAreaColor   = color.RGBA{20, 20, 34, 255}
	BorderColor     = color.RGBA{70, 100, 120, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}

	WhiteBodyColor  = color.RGBA{238, 238, 238, 255}
	BlackBodyColor  = color.RGBA{51, 51, 51, 255}
	WhiteAccent     = color.RGBA{0, 255, 255, 255} // циан для WHITE
	BlackAccent     = color.RGBA{255, 136, 0, 255} // оранжевый для BLACK
	HitboxColor     = color.RGBA{255, 0, 0, 180}
	WreckColor      = color.RGBA{90, 90, 110, 140}
	TelegraphColor  = color.RGBA{255, 0, 0, 200}
	BossHealthBack  = color.RGBA{51, 51, 51, 255}
	BossHealthColor = color.RGBA{0, 255, 0, 255}

	PowerUpColors = map[string]color.RGBA{
		"shield":           {0, 255, 0, 255},
		"rapid_fire":       {255, 255, 0, 255},
		"energy":           {0, 136, 255, 255},
		"score_multiplier": {255, 0, 255, 255},
	}
	StrokeWidth = 2.0
)
