package validation

import (
	"strings"

	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
)

// Rejection reasons reported by Assess.
const (
	ReasonEmpty            = "empty"
	ReasonTooSimilar       = "too_similar"
	ReasonSentencesTooLong = "sentences_too_long"
)

// Assessment is the quality gate verdict for one candidate rewrite.
type Assessment struct {
	Profile    string   `json:"profile"`
	Similarity float64  `json:"similarity"`
	AvgWords   float64  `json:"avgWordsPerSentence"`
	Accepted   bool     `json:"accepted"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Assess measures candidate against original and the thresholds of the
// profile. A blank candidate is rejected without measuring.
func Assess(original, candidate, profileID string) Assessment {
	profile := profiles.Get(profileID)
	assessment := Assessment{Profile: profile.ID}

	if strings.TrimSpace(candidate) == "" {
		assessment.Reasons = []string{ReasonEmpty}
		return assessment
	}

	assessment.Similarity = SimilarityRatio(original, candidate)
	assessment.AvgWords = AverageWordsPerSentence(candidate)

	if assessment.Similarity > profile.SimilarityThreshold {
		assessment.Reasons = append(assessment.Reasons, ReasonTooSimilar)
	}
	if assessment.AvgWords > float64(profile.MaxAcceptedWordsPerSentence) {
		assessment.Reasons = append(assessment.Reasons, ReasonSentencesTooLong)
	}
	assessment.Accepted = len(assessment.Reasons) == 0
	return assessment
}

// NeedsStrongerSimplification reports whether candidate fails the quality gate.
func NeedsStrongerSimplification(original, candidate, profileID string) bool {
	return !Assess(original, candidate, profileID).Accepted
}
