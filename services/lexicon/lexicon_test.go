package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchServices_OrderAndConfidence(t *testing.T) {
	matches := MatchServices("book a spa and a haircut tomorrow")
	require.Len(t, matches, 2)
	assert.Equal(t, "spa", matches[0].Canonical)
	assert.Equal(t, "salon", matches[1].Canonical)
	assert.Equal(t, ConfidenceExact, matches[0].Confidence)
	assert.Equal(t, ConfidenceExact, matches[1].Confidence)
}

func TestMatchServices_SubstringScoresPartial(t *testing.T) {
	matches := MatchServices("i want to learn spanish")
	require.Len(t, matches, 1)
	assert.Equal(t, "spa", matches[0].Canonical)
	assert.False(t, matches[0].Exact)
	assert.Equal(t, ConfidencePartial, matches[0].Confidence)
}

func TestMatchServices_GenericDroppedWhenSpecificNamed(t *testing.T) {
	matches := MatchServices("an appointment for a facial please")
	require.Len(t, matches, 1)
	assert.Equal(t, "facial", matches[0].Canonical)
}

func TestMatchServices_LoneAppointmentNarrows(t *testing.T) {
	matches := MatchServices("appointment for my teeth")
	require.Len(t, matches, 1)
	assert.Equal(t, "dental", matches[0].Canonical)
	assert.Equal(t, 0.9, matches[0].Confidence)
}

func TestMatchServices_LongestAliasWins(t *testing.T) {
	// "head spa" consumes its whole span; the inner "spa" is not a second hit.
	matches := MatchServices("book a head spa tomorrow at 9 am in delhi")
	require.Len(t, matches, 1)
	assert.Equal(t, "head spa", matches[0].Canonical)
	assert.Equal(t, ConfidenceExact, matches[0].Confidence)
}

func TestMatchServices_ConsumedSpanStillAllowsLaterMention(t *testing.T) {
	matches := MatchServices("a head spa and then a spa day")
	require.Len(t, matches, 2)
	assert.Equal(t, "head spa", matches[0].Canonical)
	assert.Equal(t, "spa", matches[1].Canonical)
}

func TestMatchServices_NoService(t *testing.T) {
	assert.Empty(t, MatchServices("see you next week"))
}

func TestServiceDuration(t *testing.T) {
	assert.Equal(t, 90, ServiceDuration("spa"))
	assert.Equal(t, 30, ServiceDuration("doctor"))
	assert.Equal(t, 45, ServiceDuration("dental"))
	assert.Equal(t, 60, ServiceDuration("unknown"))
}

func TestMatchFuzzyTimes_WordBounded(t *testing.T) {
	// "afternoon" must not also trigger the narrower "noon" rule.
	rules := MatchFuzzyTimes("sometime in the afternoon")
	require.Len(t, rules, 1)
	assert.Equal(t, "afternoon", rules[0].Token)

	rules = MatchFuzzyTimes("around noon works")
	require.Len(t, rules, 1)
	assert.Equal(t, "noon", rules[0].Token)
}

func TestMatchFuzzyTimes_MultiWordAndDayOnly(t *testing.T) {
	rules := MatchFuzzyTimes("before lunch next week")
	require.Len(t, rules, 2)
	assert.Equal(t, "before lunch", rules[0].Token)
	assert.False(t, rules[0].DayOnly)
	assert.Equal(t, "next week", rules[1].Token)
	assert.True(t, rules[1].DayOnly)
	assert.Equal(t, 7, rules[1].DayLo)
	assert.Equal(t, 13, rules[1].DayHi)
}

func TestFuzzyRuleWidth(t *testing.T) {
	rules := MatchFuzzyTimes("morning")
	require.Len(t, rules, 1)
	assert.Equal(t, 180, rules[0].Width())
}

func TestContainsDelegation(t *testing.T) {
	assert.True(t, ContainsDelegation("whatever works, you decide"))
	assert.True(t, ContainsDelegation("just book it"))
	assert.True(t, ContainsDelegation("Up to you really"))
	assert.False(t, ContainsDelegation("please book a spa for me tomorrow"))
}

func TestIntentPhrases(t *testing.T) {
	assert.True(t, ContainsCancelIntent("cancel my booking"))
	assert.True(t, ContainsModifyIntent("reschedule the spa"))
	assert.True(t, ContainsUrgency("need a doctor asap"))
	assert.False(t, ContainsCancelIntent("book a spa"))
}

func TestMatchCity(t *testing.T) {
	city, ok := MatchCity("salon in Delhi please")
	require.True(t, ok)
	assert.Equal(t, "delhi", city)

	_, ok = MatchCity("salon somewhere nice")
	assert.False(t, ok)
}

func TestDefaultCity(t *testing.T) {
	assert.Equal(t, "bangalore", DefaultCity())
	assert.True(t, IsKnownCity("Bangalore"))
	assert.False(t, IsKnownCity("paris"))
}

func TestIsIndianCity(t *testing.T) {
	assert.True(t, IsIndianCity("Delhi"))
	assert.True(t, IsIndianCity("vijayawada"))
	assert.False(t, IsIndianCity("new york"))
}

func TestNormalizeScript(t *testing.T) {
	out := NormalizeScript("రేపు స్పా బుక్ చేయండి")
	assert.Contains(t, out, "tomorrow")
	assert.Contains(t, out, "spa")
	assert.Contains(t, out, "book")
}

func TestNormalizeScript_DelegationPhrase(t *testing.T) {
	out := NormalizeScript("మీరే నిర్ణయించండి")
	assert.True(t, ContainsDelegation(out))
}

func TestNormalizeScript_LatinPassthrough(t *testing.T) {
	assert.Equal(t, "book a spa tomorrow", NormalizeScript("book a spa tomorrow"))
}
