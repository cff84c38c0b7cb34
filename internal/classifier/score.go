package classifier

import "strings"

var (
	urgencyWords  = []string{"help", "emergency", "urgent", "now", "immediately", "asap", "hurry", "911", "1122"}
	severityWords = []string{"severe", "serious", "critical", "life threatening", "dying", "critical condition"}
	timeUrgent    = []string{"right now", "happening now", "currently", "at this moment"}
	multiVictim   = []string{"multiple people", "several people", "many injured", "mass casualty"}
	agePriority   = []string{"child", "baby", "infant", "elderly", "old person", "senior citizen"}
)

// scoreKeywords awards 2 points for an exact phrase hit and, for multi-word
// phrases, 1 more point when at least 70% of the phrase's words appear anywhere
// in the text. Both rules may fire for the same phrase; that double-count is
// part of the weighting and is pinned by tests.
func scoreKeywords(text string, phrases tierPhrases) ScoreVector {
	var v ScoreVector
	v.High = scoreTier(text, phrases.High)
	v.Medium = scoreTier(text, phrases.Medium)
	v.Low = scoreTier(text, phrases.Low)
	v.Total = v.sum()
	return v
}

func scoreTier(text string, phrases []string) int {
	score := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			score += 2
		}

		words := strings.Split(phrase, " ")
		if len(words) > 1 {
			matched := 0
			for _, word := range words {
				if strings.Contains(text, word) {
					matched++
				}
			}
			if float64(matched) >= float64(len(words))*0.7 {
				score++
			}
		}
	}
	return score
}

// adjustContext boosts the high tier from secondary urgency signals and
// recomputes the total. All matching is case-insensitive substring search, so
// overlapping phrases each fire.
func adjustContext(text string, scores ScoreVector) ScoreVector {
	for _, word := range urgencyWords {
		if strings.Contains(text, word) {
			scores.High++
		}
	}

	for _, word := range severityWords {
		if strings.Contains(text, word) {
			scores.High += 2
		}
	}

	if containsAny(text, timeUrgent) {
		scores.High += 2
	}
	if containsAny(text, multiVictim) {
		scores.High += 3
	}
	if containsAny(text, agePriority) {
		scores.High++
	}

	scores.Total = scores.sum()
	return scores
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// plainScore counts one point per present phrase, ignoring tier weights. It
// feeds the confidence metric, not the routing decision.
func plainScore(text string, phrases tierPhrases) int {
	total := 0
	for _, tier := range [][]string{phrases.High, phrases.Medium, phrases.Low} {
		for _, phrase := range tier {
			if strings.Contains(text, phrase) {
				total++
			}
		}
	}
	return total
}

// priorityFromScores picks the first tier with a nonzero count. Magnitudes do
// not matter here, only presence.
func priorityFromScores(scores ScoreVector) Priority {
	switch {
	case scores.High > 0:
		return PriorityHigh
	case scores.Medium > 0:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
