package domain

// RPSMove is a rock-paper-scissors throw.
type RPSMove string

const (
	RPSRock     RPSMove = "rock"
	RPSPaper    RPSMove = "paper"
	RPSScissors RPSMove = "scissors"
)

// RPSOutcome is the player's result against the bot.
type RPSOutcome string

const (
	RPSWin  RPSOutcome = "win"
	RPSLoss RPSOutcome = "loss"
	RPSDraw RPSOutcome = "draw"
)

// RPSResult is one completed round of rock-paper-scissors.
type RPSResult struct {
	PlayerMove RPSMove    `json:"player_move"`
	BotMove    RPSMove    `json:"bot_move"`
	Outcome    RPSOutcome `json:"outcome"`
}
