package core

// GameState is the complete simulation state, owned by a single game loop
// All fields are values; copies are independent
type GameState struct {
	Field   Field
	Player1 Paddle
	Player2 Paddle
	Ball    Ball
	Score   Score
	Match   MatchState
	Status  string
}
