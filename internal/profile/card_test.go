package profile

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewCardStartsClosedWithSeed(t *testing.T) {
	t.Parallel()

	state := NewCard().Snapshot()
	assert.Equal(t, OverlayClosed, state.Overlay)
	assert.Equal(t, Seed(), state.Profile)
	assert.Equal(t, MaritalStatus("UnMarried"), state.Profile.MaritalStatus)
}

func TestOpenThenCloseKeepsRecord(t *testing.T) {
	t.Parallel()

	card := NewCard()
	before := card.Snapshot().Profile

	card.Open()
	assert.Equal(t, OverlayOpen, card.Snapshot().Overlay)
	card.Close()

	after := card.Snapshot()
	assert.Equal(t, OverlayClosed, after.Overlay)
	assert.Equal(t, before, after.Profile)
}

func TestUpdateThenSubmit(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.Open()
	require.NoError(t, card.Apply(Update{Field: FieldName, Value: "New Name"}))
	require.NoError(t, card.Submit())

	state := card.Snapshot()
	assert.Equal(t, OverlayClosed, state.Overlay)
	assert.Equal(t, "New Name", state.Profile.Name)
}

func TestCloseKeepsLiveEdits(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.Open()
	require.NoError(t, card.Apply(Update{Field: FieldCareer, Value: "Photographer"}))
	card.Close()

	assert.Equal(t, "Photographer", card.Snapshot().Profile.Career)
}

func TestSubmitAppliesPendingUpdatesInOrder(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.Open()
	require.NoError(t, card.Submit(
		Update{Field: FieldEducation, Value: "first"},
		Update{Field: FieldEducation, Value: "second"},
		Update{Field: FieldCareerStatus, Value: "Freelance"},
	))

	state := card.Snapshot()
	assert.Equal(t, OverlayClosed, state.Overlay)
	assert.Equal(t, "second", state.Profile.Education)
	assert.Equal(t, "Freelance", state.Profile.CareerStatus)
}

func TestSubmitRejectsUnknownFieldAtomically(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.Open()
	err := card.Submit(
		Update{Field: FieldName, Value: "Partial"},
		Update{Field: "unknown", Value: "x"},
	)
	require.ErrorIs(t, err, ErrUnknownField)

	state := card.Snapshot()
	assert.Equal(t, OverlayOpen, state.Overlay)
	assert.Equal(t, Seed().Name, state.Profile.Name)
}

func TestSnapshotUsesClockAndLocation(t *testing.T) {
	t.Parallel()

	// 2024-06-01 02:00 UTC is still May 31 five hours west.
	loc := time.FixedZone("UTC-5", -5*60*60)
	card := NewCard(
		WithClock(fixedClock(time.Date(2024, time.June, 1, 2, 0, 0, 0, time.UTC))),
		WithLocation(loc),
		WithSeed(Profile{DOB: "2000-06-01"}),
	)

	state := card.Snapshot()
	assert.Equal(t, 31, state.Today.Day())
	age, ok := state.Age()
	require.True(t, ok)
	assert.Equal(t, 23, age)
}

func TestSnapshotAgeWithSeedDOB(t *testing.T) {
	t.Parallel()

	card := NewCard(WithClock(fixedClock(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))), WithLocation(time.UTC))
	age, ok := card.Snapshot().Age()
	require.True(t, ok)
	assert.Equal(t, 28, age)
}

func TestCardConcurrentUpdates(t *testing.T) {
	t.Parallel()

	card := NewCard()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			card.Open()
			_ = card.Apply(Update{Field: FieldName, Value: "Concurrent"})
			_ = card.Snapshot()
			card.Close()
		}()
	}
	wg.Wait()

	state := card.Snapshot()
	assert.Equal(t, "Concurrent", state.Profile.Name)
	assert.Equal(t, OverlayClosed, state.Overlay)
}
