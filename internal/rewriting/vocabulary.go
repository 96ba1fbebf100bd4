// Package rewriting provides the rule-based simplification path: ordered lexical
// substitution, clause splitting and word-count bounded re-chunking.
package rewriting

import (
	"regexp"

	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
)

// ReplacementRule is a case-insensitive whole-word pattern and its literal replacement.
type ReplacementRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// NewRule compiles expr as a case-insensitive whole-word rule.
func NewRule(expr, replacement string) ReplacementRule {
	return ReplacementRule{
		Pattern:     regexp.MustCompile(`(?i)\b(?:` + expr + `)\b`),
		Replacement: replacement,
	}
}

// Multi-word phrases must precede the single-word rules they overlap.
var standardRules = []ReplacementRule{
	NewRule(`notwithstanding the provisions set forth (?:herein|in this document)`, "even if this document says otherwise"),
	NewRule(`notwithstanding`, "even if"),
	NewRule(`herein`, "in this document"),
	NewRule(`hereby`, "by this"),
	NewRule(`thereof`, "of that"),
	NewRule(`therein`, "in that"),
	NewRule(`pursuant to`, "under"),
	NewRule(`aforementioned`, "mentioned earlier"),
	NewRule(`shall`, "must"),
	NewRule(`remit payment`, "pay"),
	NewRule(`in the event that`, "if"),
	NewRule(`due to the fact that`, "because"),
	NewRule(`for the purpose of`, "to"),
	NewRule(`null and void`, "not valid"),
	NewRule(`commence`, "start"),
	NewRule(`terminate`, "end"),
	NewRule(`termination`, "end"),
	NewRule(`utilize`, "use"),
	NewRule(`approximately`, "about"),
	NewRule(`subsequent to`, "after"),
	NewRule(`prior to`, "before"),
	NewRule(`assist(?:ance)?`, "help"),
	NewRule(`individuals`, "people"),
	NewRule(`purchase`, "buy"),
	NewRule(`modification`, "change"),
	NewRule(`facilitate`, "help"),
	NewRule(`notify`, "tell"),
	NewRule(`inform`, "tell"),
	NewRule(`commencement date`, "start date"),
	NewRule(`cease`, "stop"),
	NewRule(`obtain`, "get"),
	NewRule(`initiate`, "start"),
	NewRule(`lessee`, "renter"),
	NewRule(`lessor`, "owner"),
	NewRule(`failing which`, "if this does not happen"),
	NewRule(`numerous`, "many"),
	NewRule(`therefore`, "so"),
	NewRule(`consequently`, "so"),
	NewRule(`diagnosis`, "health problem"),
	NewRule(`medication`, "medicine"),
	NewRule(`adverse effects`, "side effects"),
	NewRule(`contraindicated`, "not safe to use"),
	NewRule(`hypertension`, "high blood pressure"),
	NewRule(`myocardial infarction`, "heart attack"),
	NewRule(`statute`, "law"),
	NewRule(`ordinance`, "local law"),
	NewRule(`jurisdiction`, "legal area"),
}

// academicRules keep technical vocabulary and only unpack dense connectives.
var academicRules = []ReplacementRule{
	NewRule(`notwithstanding`, "despite this"),
	NewRule(`pursuant to`, "under"),
	NewRule(`in the event that`, "if"),
	NewRule(`due to the fact that`, "because"),
	NewRule(`for the purpose of`, "to"),
	NewRule(`commence`, "begin"),
	NewRule(`terminate`, "end"),
	NewRule(`subsequent to`, "after"),
	NewRule(`prior to`, "before"),
}

var extraSimpleRules = []ReplacementRule{
	NewRule(`commence`, "start"),
	NewRule(`approximately`, "about"),
	NewRule(`individuals`, "people"),
	NewRule(`assist(?:ance)?`, "help"),
	NewRule(`regarding`, "about"),
	NewRule(`therefore`, "so"),
}

// RulesFor returns the ordered rule list used for a profile.
func RulesFor(profileID string) []ReplacementRule {
	profile := profiles.Get(profileID)

	base := standardRules
	if profile.ID == profiles.Academic {
		base = academicRules
	}

	rules := make([]ReplacementRule, 0, len(base)+len(extraSimpleRules))
	rules = append(rules, base...)
	if profile.UsesExtraSimpleVocabulary() {
		rules = append(rules, extraSimpleRules...)
	}
	return rules
}

// SimplifyVocabulary applies the profile's replacement tables to text.
func SimplifyVocabulary(text, profileID string) string {
	return ApplyRules(text, RulesFor(profileID))
}

// ApplyRules applies rules strictly in order. Each replacement is literal; its
// output is visible to the rules that follow it.
func ApplyRules(text string, rules []ReplacementRule) string {
	for _, rule := range rules {
		text = rule.Pattern.ReplaceAllLiteralString(text, rule.Replacement)
	}
	return text
}
