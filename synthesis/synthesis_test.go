package synthesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/search"
	"github.com/katalvlaran/frontier/synthesis"
)

var sampleRules = []synthesis.Rule{
	{From: "e", To: "H"},
	{From: "e", To: "O"},
	{From: "H", To: "HO"},
	{From: "H", To: "OH"},
	{From: "O", To: "HH"},
}

func TestParse(t *testing.T) {
	rules, molecule, err := synthesis.Parse([]string{
		"e => H",
		"e => O",
		"H => HO",
		"H => OH",
		"O => HH",
		"",
		"HOH",
		"",
	})
	require.NoError(t, err)
	assert.Equal(t, sampleRules, rules)
	assert.Equal(t, "HOH", molecule)
}

func TestParse_Errors(t *testing.T) {
	_, _, err := synthesis.Parse(nil)
	assert.ErrorIs(t, err, synthesis.ErrNoMolecule)

	_, _, err = synthesis.Parse([]string{"H => HO"})
	assert.ErrorIs(t, err, synthesis.ErrNoMolecule)

	_, _, err = synthesis.Parse([]string{"H -> HO", "HOH"})
	assert.ErrorIs(t, err, synthesis.ErrMalformedRule)

	_, err = synthesis.ParseRule(" => HO")
	assert.ErrorIs(t, err, synthesis.ErrMalformedRule)
}

func TestReplacements(t *testing.T) {
	assert.Equal(t, []string{"HOOH", "HOHO"}, synthesis.Replacements("HOH", "H", "HO"))
	assert.Equal(t, []string{"xa", "ax"}, synthesis.Replacements("aa", "a", "x"))
	// Matches are non-overlapping, left to right.
	assert.Equal(t, []string{"xa"}, synthesis.Replacements("aaa", "aa", "x"))
	assert.Nil(t, synthesis.Replacements("HOH", "Ca", "x"))
	assert.Nil(t, synthesis.Replacements("HOH", "", "x"))
}

func TestCalibrate(t *testing.T) {
	forward := sampleRules[2:]
	assert.Equal(t, 4, synthesis.Calibrate(forward, "HOH"))
	assert.Equal(t, 7, synthesis.Calibrate(forward, "HOHOHO"))
	assert.Equal(t, 0, synthesis.Calibrate(forward, "Xx"))
}

// TestFewest_ThreeSteps: e => O => HH => HOH.
func TestFewest_ThreeSteps(t *testing.T) {
	n, err := synthesis.Fewest(sampleRules, "HOH")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFewest_ClosedSetAgrees(t *testing.T) {
	n, err := synthesis.Fewest(sampleRules, "HOH", search.WithClosedSet())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFewest_AlreadyBase(t *testing.T) {
	n, err := synthesis.Fewest(sampleRules, synthesis.Base)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFewest_Unreachable(t *testing.T) {
	_, err := synthesis.Fewest([]synthesis.Rule{{From: "e", To: "H"}}, "O")
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
}

func TestFewestFrom_CustomBase(t *testing.T) {
	rules := []synthesis.Rule{{From: "S", To: "ab"}, {From: "a", To: "aa"}}
	n, err := synthesis.FewestFrom(rules, "aaab", "S")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCandidate_PreferableTo(t *testing.T) {
	short := synthesis.Candidate{Molecule: "HH", Steps: 9}
	long := synthesis.Candidate{Molecule: "HOH", Steps: 1}
	assert.True(t, short.PreferableTo(long))
	assert.False(t, long.PreferableTo(short))
	assert.False(t, short.PreferableTo(synthesis.Candidate{Molecule: "OO"}))
}
