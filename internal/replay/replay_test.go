package replay

import (
	"bytes"
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/input"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weaver стреляет и качается из стороны в сторону.
type weaver struct {
	input.Scripted
	frame int
}

func (w *weaver) next() {
	w.frame++
	f := input.Frame{Fire: true, Switch: w.frame%90 == 0}
	if (w.frame/45)%2 == 0 {
		f.MoveX = 1
	} else {
		f.MoveX = -1
	}
	w.Set(f)
}

func record(t *testing.T, seed int64, frames int) *Recording {
	t.Helper()
	tuning := config.Default()
	tuning.Seed = seed
	game := app.NewGame(app.Options{Tuning: tuning})
	game.StartGame()

	src := &weaver{}
	rec := NewRecorder(game, src)
	for i := 0; i < frames; i++ {
		src.next()
		rec.Update(1.0 / 60)
	}
	require.Equal(t, frames, rec.Len())
	return rec.Finish()
}

func TestRecordAndVerify(t *testing.T) {
	rec := record(t, 42, 600)

	res, err := Verify(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.FinalHash, res.Hash)
	assert.Equal(t, rec.FinalScore, res.Score)
	assert.Equal(t, 600, res.Frames)
}

func TestVerify_DetectsTampering(t *testing.T) {
	rec := record(t, 42, 300)
	for i := range rec.Steps {
		rec.Steps[i].MoveX = 0
	}

	_, err := Verify(rec)
	assert.ErrorIs(t, err, ErrHashMismatch)
}

func TestVerify_AppliesRecordedEnemyDefinitions(t *testing.T) {
	sizes, specials := defs.EnemySizes, defs.SpecialDefs
	t.Cleanup(func() { defs.EnemySizes, defs.SpecialDefs = sizes, specials })

	override := defs.Current()
	for name, def := range override.Sizes {
		def.SpeedFactor *= 2
		def.Value *= 3
		override.Sizes[name] = def
	}
	require.NoError(t, defs.Apply(override))
	rec := record(t, 42, 1800)
	require.Equal(t, override, rec.Enemies)

	// процесс проверки стартует с таблицами по умолчанию
	defs.EnemySizes, defs.SpecialDefs = sizes, specials
	res, err := Verify(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.FinalHash, res.Hash)
	assert.Equal(t, sizes[component.SizeMedium], defs.SizeDef(component.SizeMedium), "tables restored after playback")

	rec.Enemies = defs.Definitions{}
	_, err = Verify(rec)
	assert.ErrorIs(t, err, ErrHashMismatch)
}

func TestVerify_Empty(t *testing.T) {
	_, err := Verify(&Recording{Version: formatVersion, Seed: 1})
	assert.ErrorIs(t, err, ErrEmptyRecording)
}

func TestNewPlayer_SeedMismatch(t *testing.T) {
	rec := record(t, 42, 10)
	tuning := config.Default()
	tuning.Seed = 43
	game := app.NewGame(app.Options{Tuning: tuning})

	_, err := NewPlayer(game, rec)
	assert.ErrorIs(t, err, ErrSeedMismatch)
}

func TestPlayer_Steps(t *testing.T) {
	rec := record(t, 5, 3)
	tuning := config.Default()
	tuning.Seed = 5
	game := app.NewGame(app.Options{Tuning: tuning})
	game.StartGame()

	p, err := NewPlayer(game, rec)
	require.NoError(t, err)
	steps := 0
	for p.Step() {
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.True(t, p.Done())
	assert.False(t, p.Step())
	assert.Equal(t, rec.Steps[2].Frame, p.Frame())
}

func TestEncodeDecode(t *testing.T) {
	rec := record(t, 9, 120)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rec))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)

	_, err = Verify(decoded)
	assert.NoError(t, err)
}

func TestDecode_RejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Recording{Version: 99}))

	_, err := Decode(&buf)
	assert.ErrorIs(t, err, ErrBadVersion)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not zstd")))
	assert.Error(t, err)
}

func TestSaveLoadFile(t *testing.T) {
	rec := record(t, 11, 30)
	path := filepath.Join(t.TempDir(), "run.replay")

	require.NoError(t, SaveFile(path, rec))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rec.FinalHash, loaded.FinalHash)
	assert.Len(t, loaded.Steps, 30)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRecordAfterRestart(t *testing.T) {
	tuning := config.Default()
	tuning.Seed = 5
	game := app.NewGame(app.Options{Tuning: tuning})
	game.StartGame()

	src := &weaver{}
	first := NewRecorder(game, src)
	for i := 0; i < 300; i++ {
		src.next()
		first.Update(1.0 / 60)
	}
	game.Restart()

	second := NewRecorder(game, src)
	for i := 0; i < 300; i++ {
		src.next()
		second.Update(1.0 / 60)
	}
	rec := second.Finish()
	require.True(t, rec.Restarted)

	res, err := Verify(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.FinalHash, res.Hash)
}

func TestTape_SavesOnGameOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.replay")
	tuning := config.Default()
	tuning.Seed = 9
	tuning.Player.Lives = 1
	game := app.NewGame(app.Options{Tuning: tuning})

	src := &weaver{}
	tape := NewTape(game, src, path)
	tape.Update(1.0 / 60)
	assert.False(t, tape.Recording(), "no recording before start")

	tape.StartGame()
	require.True(t, tape.Recording())
	for i := 0; i < 120; i++ {
		src.next()
		tape.Update(1.0 / 60)
	}
	game.GameOver()
	tape.Update(1.0 / 60)
	assert.False(t, tape.Recording())

	rec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, rec.Steps, 121)
	assert.Equal(t, game.ScoreSystem.Score(), rec.FinalScore)
}

func TestTape_RestartStartsNewRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.replay")
	game := app.NewGame(app.Options{})
	src := &weaver{}
	tape := NewTape(game, src, path)

	tape.StartGame()
	for i := 0; i < 30; i++ {
		src.next()
		tape.Update(1.0 / 60)
	}
	tape.Restart()
	for i := 0; i < 10; i++ {
		src.next()
		tape.Update(1.0 / 60)
	}
	tape.Close()

	rec, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, rec.Restarted)
	assert.Len(t, rec.Steps, 10)
	_, err = Verify(rec)
	require.NoError(t, err)
}
