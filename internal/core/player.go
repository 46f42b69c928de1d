package core

import (
	"fmt"
	"time"
)

// Player is a passive record for one side: identity, clock budget and
// running statistics. It never computes legality; the game mirrors the
// in-check flag into it after each evaluation.
type Player struct {
	Name           string
	Color          Color
	Human          bool
	TimeLeft       time.Duration
	MovesPlayed    int
	PiecesCaptured int
	ChecksGiven    int
	InCheck        bool
}

// NewPlayer creates a player with the given time budget in seconds.
func NewPlayer(name string, color Color, human bool, timeLimitSeconds int) *Player {
	return &Player{
		Name:     name,
		Color:    color,
		Human:    human,
		TimeLeft: time.Duration(timeLimitSeconds) * time.Second,
	}
}

// HasTimeLeft reports whether the player's clock is not exhausted.
func (p *Player) HasTimeLeft() bool {
	return p.TimeLeft > 0
}

// AddTime credits the player's clock.
func (p *Player) AddTime(d time.Duration) {
	p.TimeLeft += d
}

// SubtractTime debits the player's clock, clamping at zero. The engine
// never drives a clock itself; callers report elapsed time here.
func (p *Player) SubtractTime(d time.Duration) {
	p.TimeLeft -= d
	if p.TimeLeft < 0 {
		p.TimeLeft = 0
	}
}

// FormattedTime returns the remaining time as MM:SS.
func (p *Player) FormattedTime() string {
	total := int(p.TimeLeft.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Statistics returns a one-line summary for the presentation layer.
func (p *Player) Statistics() string {
	return fmt.Sprintf("%s (%s): %d moves, %d captures, %d checks, %s left",
		p.Name, p.Color.Name(), p.MovesPlayed, p.PiecesCaptured, p.ChecksGiven, p.FormattedTime())
}

// ResetStatistics clears the counters but keeps identity and clock.
func (p *Player) ResetStatistics() {
	p.MovesPlayed = 0
	p.PiecesCaptured = 0
	p.ChecksGiven = 0
	p.InCheck = false
}

// Clone returns an independent copy, used for undo snapshots.
func (p *Player) Clone() *Player {
	cp := *p
	return &cp
}
