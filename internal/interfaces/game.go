package interfaces

import "go-polarity-shooter/internal/component"

//go:generate mockgen -destination=mock/mock_game.go -package=interfacesmock go-polarity-shooter/internal/interfaces Game

// Game - то, что управляющему циклу фронтенда нужно от игры.
// Это помогает избежать циклических зависимостей.
type Game interface {
	Status() component.GameStatus
	StartGame()
	Restart()
	Update(deltaTime float64)
}
