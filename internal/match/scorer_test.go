package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"JOURNAL", "OF", "FINANCE"}, Tokenize("The Journal of Finance"))
	assert.Equal(t, []string{"CELL", "HOST", "AND", "MICROBE"}, Tokenize("Cell Host & Microbe"))
	assert.Equal(t, []string{"J", "BIOL", "CHEM"}, Tokenize("J. Biol. Chem."))
}

func TestTokenize_DropsStopwords(t *testing.T) {
	assert.Equal(t, []string{"LANCET"}, Tokenize("The Lancet"))
	assert.Equal(t, []string{"STUDY"}, Tokenize("A Study"))
}

func TestScore_AbbreviationCoverage(t *testing.T) {
	// Three query tokens, each a prefix of an aligned target token.
	score := Score("J Biol Chem", "Journal of Biological Chemistry")
	assert.GreaterOrEqual(t, score, MatchThreshold)
}

func TestScore_TruncationGuard(t *testing.T) {
	assert.Zero(t, Score("Journal of", "Journal of Finance"))
	assert.Zero(t, Score("Advances in", "Advances in Physics"))
	assert.Zero(t, Score("Reports for", "Reports for Mathematical Physics"))
}

func TestScore_QueryLongerThanTarget(t *testing.T) {
	assert.Zero(t, Score("Journal of Biological Chemistry", "Cell"))
}

func TestScore_SubsequenceAbbreviation(t *testing.T) {
	assert.True(t, tokenMatches("NATL", "NATIONAL"))
	assert.True(t, tokenMatches("UNIV", "UNIVERSITY"))
	assert.False(t, tokenMatches("ATL", "NATIONAL"), "first characters must agree")

	score := Score("Proc Natl Acad Sci", "Proceedings of the National Academy of Sciences")
	assert.GreaterOrEqual(t, score, MatchThreshold)
}

func TestScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 100.0, Score("Cell", "Cell"))
	assert.Equal(t, 100.0, Score("Nature Medicine", "Nature Medicine"))
}

func TestScore_PenaltyOnlyAtNinetyPlus(t *testing.T) {
	// 2 of 3 query tokens match: coverage 66.7, no penalty applies even
	// though the target has surplus words.
	low := Score("J Biol Xyz", "Journal of Biological Chemistry")
	assert.InDelta(t, 66.7, low, 0.1)

	// Full coverage with one surplus target word ("OF" survives
	// tokenization): 100 - 2*2 = 96... the surplus here is OF plus nothing
	// else, so the deduction stays small.
	high := Score("J Biol Chem", "Journal of Biological Chemistry")
	assert.Greater(t, high, 90.0)
}

func TestScore_PenaltyCappedAtTwenty(t *testing.T) {
	target := "Journal on Results in Parts One Two Three Four Five Six Seven Eight Nine Ten Eleven Twelve"
	score := Score("Journal", target)
	// Full coverage (100) minus the capped penalty.
	assert.Equal(t, 80.0, score)
}

func TestScore_TighterTargetWinsOnPenalty(t *testing.T) {
	tight := Score("Chem Rev", "Chemical Reviews")
	loose := Score("Chem Rev", "Chemical Reviews of the National Society of Industrial Research")
	assert.Greater(t, tight, loose)
}

func TestScore_MultibyteTokensCompareRunewise(t *testing.T) {
	// 中,科,学 is a rune subsequence of 中,国,科,学 sharing the first rune.
	assert.True(t, tokenMatches("中科学", "中国科学"))
	assert.Equal(t, 100.0, Score("中科学", "中国科学"))

	// 报 never appears in the target; its UTF-8 bytes do, spread across
	// 技 and 楼, which byte-wise indexing would accept as a subsequence.
	assert.False(t, tokenMatches("学报", "学技楼"))
	assert.Zero(t, Score("学报", "学技楼"))
}

func TestScore_EmptyQuery(t *testing.T) {
	assert.Zero(t, Score("", "Cell"))
	assert.Zero(t, Score("The", "Cell"))
}

func TestScore_NeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, Score("Zzz", "Zebrafish Housing Reports Annual"), 0.0)
}
