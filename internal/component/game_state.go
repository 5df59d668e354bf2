package component

// GameStatus - состояние игрового цикла, видимое снаружи.
type GameStatus int

const (
	StartScreen GameStatus = iota
	Playing
	GameOver
)

func (s GameStatus) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case GameOver:
		return "GAME_OVER"
	default:
		return "START_SCREEN"
	}
}

// MusicMode - режим фоновой музыки.
type MusicMode string

const (
	MusicNormal MusicMode = "normal"
	MusicDanger MusicMode = "danger"
	MusicBoss   MusicMode = "boss"
)
