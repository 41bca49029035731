package flappy

import "strconv"

// Scoreboard holds the round score and the best score of the session.
type Scoreboard struct {
	Score     int
	Highscore int
}

// Add awards points to the current round.
func (s *Scoreboard) Add(points int) {
	s.Score += points
}

// Ratchet raises the highscore to the score if the score is higher.
// It returns true when the highscore changed.
func (s *Scoreboard) Ratchet() bool {
	if s.Score <= s.Highscore {
		return false
	}
	s.Highscore = s.Score
	return true
}

// ResetScore zeroes the round score. The highscore is kept.
func (s *Scoreboard) ResetScore() {
	s.Score = 0
}

// ScoreText is the score as displayed.
func (s Scoreboard) ScoreText() string {
	return strconv.Itoa(s.Score)
}

// HighscoreText is the highscore as displayed.
func (s Scoreboard) HighscoreText() string {
	return strconv.Itoa(s.Highscore)
}
