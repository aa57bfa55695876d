package extract

import "github.com/fwojciec/artext"

// ScoreFunc scores a candidate container. Higher is better.
type ScoreFunc func(el artext.Element) int

// LengthScore scores a container by the character length of its
// whitespace-normalized text.
func LengthScore(el artext.Element) int {
	return artext.TextLength(normalize(el.Text()))
}

// Rank returns the candidate with the highest score, or nil when there are no
// candidates. Ties go to the candidate encountered first.
func Rank(candidates []artext.Element, score ScoreFunc) artext.Element {
	if score == nil {
		score = LengthScore
	}

	var best artext.Element
	bestScore := 0
	for _, c := range candidates {
		s := score(c)
		if best == nil || s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}
