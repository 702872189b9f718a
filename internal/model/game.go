package model

// Direction is a snake heading in the watch-mode game state
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Position is a cell on the game board
type Position struct {
	X int
	Y int
}

// GameState is the spectator view of a session. There is no server-side
// simulation; watch mode serves a fixed placeholder board carrying the
// session's stored score.
type GameState struct {
	Snake     []Position
	Food      Position
	Direction Direction
	Score     int
	GameOver  bool
}
