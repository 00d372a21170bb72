package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecount(t *testing.T) {
	loc := &Location{Upvotes: 7, Downvotes: 3}
	loc.Recount()
	assert.Equal(t, 4, loc.TotalPoints)

	// Recounting with unchanged inputs yields the same result
	loc.Recount()
	assert.Equal(t, 4, loc.TotalPoints)
}

func TestRecount_Negative(t *testing.T) {
	loc := &Location{Upvotes: 1, Downvotes: 5}
	loc.Recount()
	assert.Equal(t, -4, loc.TotalPoints)
}

func TestApplyVote_FirstVote(t *testing.T) {
	loc := &Location{}

	changed := loc.ApplyVote(DirectionNone, DirectionUp)

	assert.True(t, changed)
	assert.Equal(t, 1, loc.Upvotes)
	assert.Equal(t, 0, loc.Downvotes)
	assert.Equal(t, 1, loc.TotalPoints)
}

func TestApplyVote_SameDirection(t *testing.T) {
	loc := &Location{Upvotes: 1, TotalPoints: 1}

	changed := loc.ApplyVote(DirectionUp, DirectionUp)

	assert.False(t, changed)
	assert.Equal(t, 1, loc.Upvotes)
	assert.Equal(t, 1, loc.TotalPoints)
}

func TestApplyVote_Flip_ChangesPointsByTwo(t *testing.T) {
	loc := &Location{Upvotes: 3, Downvotes: 1}
	loc.Recount()
	before := loc.TotalPoints

	changed := loc.ApplyVote(DirectionUp, DirectionDown)

	assert.True(t, changed)
	assert.Equal(t, 2, loc.Upvotes)
	assert.Equal(t, 2, loc.Downvotes)
	assert.Equal(t, before-2, loc.TotalPoints)

	// Flip back
	loc.ApplyVote(DirectionDown, DirectionUp)
	assert.Equal(t, before, loc.TotalPoints)
}

func TestApplyVote_InvariantHolds(t *testing.T) {
	loc := &Location{}
	steps := []struct {
		prev, next Direction
	}{
		{DirectionNone, DirectionUp},
		{DirectionNone, DirectionDown},
		{DirectionDown, DirectionUp},
		{DirectionNone, DirectionUp},
		{DirectionUp, DirectionDown},
		{DirectionNone, DirectionDown},
	}

	for _, s := range steps {
		loc.ApplyVote(s.prev, s.next)
		assert.Equal(t, loc.Upvotes-loc.Downvotes, loc.TotalPoints)
	}
}

func TestNextStatus_FlagThreshold(t *testing.T) {
	th := DefaultThresholds()

	// -5 stays, -6 flags
	assert.Equal(t, StatusNormal, NextStatus(StatusNormal, -5, th))
	assert.Equal(t, StatusFlagged, NextStatus(StatusNormal, -6, th))
}

func TestNextStatus_FlagFromAnyState(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, StatusFlagged, NextStatus(StatusPending, -6, th))
	assert.Equal(t, StatusFlagged, NextStatus(StatusVerified, -6, th))
	assert.Equal(t, StatusFlagged, NextStatus(StatusFlagged, -6, th))
}

func TestNextStatus_Verify(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, StatusVerified, NextStatus(StatusNormal, 10, th))
	assert.Equal(t, StatusVerified, NextStatus(StatusPending, 12, th))
	assert.Equal(t, StatusNormal, NextStatus(StatusNormal, 9, th))
}

func TestNextStatus_NoDecay(t *testing.T) {
	th := DefaultThresholds()

	// Once flagged, score recovery does not clear the flag
	assert.Equal(t, StatusFlagged, NextStatus(StatusFlagged, 0, th))
	assert.Equal(t, StatusFlagged, NextStatus(StatusFlagged, 100, th))

	// Verified stays verified when the score drops below the threshold
	assert.Equal(t, StatusVerified, NextStatus(StatusVerified, 3, th))
}

func TestNextStatus_Idempotent(t *testing.T) {
	th := DefaultThresholds()

	s := NextStatus(StatusNormal, 10, th)
	assert.Equal(t, StatusVerified, s)

	// Re-evaluating with no further change does not transition again
	assert.Equal(t, StatusVerified, NextStatus(s, 10, th))
}

// Scenario from the product: one upvote keeps a fresh location normal, six
// downvotes later the seventh net-negative point flips it to flagged.
func TestVoteSequence_FlagScenario(t *testing.T) {
	th := DefaultThresholds()
	loc := &Location{Status: StatusNormal}

	loc.ApplyVote(DirectionNone, DirectionUp)
	loc.Status = NextStatus(loc.Status, loc.TotalPoints, th)
	assert.Equal(t, 1, loc.TotalPoints)
	assert.Equal(t, StatusNormal, loc.Status)

	for i := 0; i < 5; i++ {
		loc.ApplyVote(DirectionNone, DirectionDown)
		loc.Status = NextStatus(loc.Status, loc.TotalPoints, th)
	}
	assert.Equal(t, -4, loc.TotalPoints)
	assert.Equal(t, StatusNormal, loc.Status)

	loc.ApplyVote(DirectionNone, DirectionDown)
	loc.Status = NextStatus(loc.Status, loc.TotalPoints, th)
	assert.Equal(t, -5, loc.TotalPoints)
	assert.Equal(t, StatusNormal, loc.Status)

	loc.ApplyVote(DirectionNone, DirectionDown)
	loc.Status = NextStatus(loc.Status, loc.TotalPoints, th)
	assert.Equal(t, -6, loc.TotalPoints)
	assert.Equal(t, StatusFlagged, loc.Status)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("up")
	assert.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	d, err = ParseDirection("down")
	assert.NoError(t, err)
	assert.Equal(t, DirectionDown, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDirection("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusNormal))
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusVerified))
	assert.True(t, IsValidStatus(StatusFlagged))
	assert.False(t, IsValidStatus("banana"))
}
