package main

func init() {
	register("2", day2)
}

func day2(r *run) error {
	lines, err := r.lines()
	if err != nil {
		return err
	}

	rounds, err := parseLines(lines, parseRound)
	if err != nil {
		return err
	}
	r.debug(rounds)
	score, err := sumRecords(rounds, r.workers, round.score)
	if err != nil {
		return err
	}
	r.answer(score)

	rounds, err = parseLines(lines, parseRoundForOutcome)
	if err != nil {
		return err
	}
	score, err = sumRecords(rounds, r.workers, round.score)
	if err != nil {
		return err
	}
	r.answer(score)
	return nil
}

// A shape's value is its intrinsic score.
type shape int

const (
	rock     shape = 1
	paper    shape = 2
	scissors shape = 3
)

func (s shape) String() string {
	switch s {
	case rock:
		return "rock"
	case paper:
		return "paper"
	case scissors:
		return "scissors"
	}
	return "?"
}

// beatenBy returns the shape that beats s.
func (s shape) beatenBy() shape {
	return s%3 + 1
}

// beats returns the shape that s beats.
func (s shape) beats() shape {
	return (s+1)%3 + 1
}

// An outcome's value is the bonus the player gets for it.
type outcome int

const (
	lose outcome = 0
	draw outcome = 3
	win  outcome = 6
)

// forOutcome returns the shape to play against s to get o.
func (s shape) forOutcome(o outcome) shape {
	switch o {
	case win:
		return s.beatenBy()
	case lose:
		return s.beats()
	}
	return s
}

var (
	opponentShapes = map[string]shape{"A": rock, "B": paper, "C": scissors}
	playerShapes   = map[string]shape{"X": rock, "Y": paper, "Z": scissors}
	outcomes       = map[string]outcome{"X": lose, "Y": draw, "Z": win}
)

type round struct {
	opponent shape
	player   shape
}

func (g round) outcome() outcome {
	switch g.player {
	case g.opponent.beatenBy():
		return win
	case g.opponent.beats():
		return lose
	}
	return draw
}

func (g round) score() (int, error) {
	return int(g.player) + int(g.outcome()), nil
}

// parseRound parses "A X": the opponent's shape then the player's.
func parseRound(line string) (round, error) {
	var g round
	tokens, err := splitTokens(line, 2)
	if err != nil {
		return g, err
	}
	if g.opponent, err = lookup(opponentShapes, tokens[0]); err != nil {
		return g, err
	}
	if g.player, err = lookup(playerShapes, tokens[1]); err != nil {
		return g, err
	}
	return g, nil
}

// parseRoundForOutcome parses "A X" where the second symbol is the outcome
// the player must reach.
func parseRoundForOutcome(line string) (round, error) {
	var g round
	tokens, err := splitTokens(line, 2)
	if err != nil {
		return g, err
	}
	if g.opponent, err = lookup(opponentShapes, tokens[0]); err != nil {
		return g, err
	}
	o, err := lookup(outcomes, tokens[1])
	if err != nil {
		return g, err
	}
	g.player = g.opponent.forOutcome(o)
	return g, nil
}
