package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase(t *testing.T) {
	cases := []struct {
		progress int
		want     ProjectPhase
	}{
		{0, PhaseNotStarted},
		{1, PhaseInProgress},
		{50, PhaseInProgress},
		{99, PhaseInProgress},
		{100, PhaseCompleted},
	}
	for _, tc := range cases {
		p := Project{Progress: tc.progress}
		assert.Equal(t, tc.want, p.Phase(), "progress %d", tc.progress)
	}
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-10))
	assert.Equal(t, 0, ClampProgress(0))
	assert.Equal(t, 55, ClampProgress(55))
	assert.Equal(t, 100, ClampProgress(100))
	assert.Equal(t, 100, ClampProgress(140))
}

func TestProjectValidate(t *testing.T) {
	deadline := NewDate(2026, time.September, 15)

	p := Project{Name: "Tower A", Deadline: deadline, SqFt: 600}
	require.NoError(t, p.Validate())

	blank := Project{Name: "   ", Deadline: deadline, SqFt: 600}
	assert.ErrorIs(t, blank.Validate(), ErrValidation)

	noDeadline := Project{Name: "Tower A", SqFt: 600}
	assert.ErrorIs(t, noDeadline.Validate(), ErrValidation)

	badArea := Project{Name: "Tower A", Deadline: deadline, SqFt: 0}
	assert.ErrorIs(t, badArea.Validate(), ErrValidation)
}

func TestNameEquals(t *testing.T) {
	p := Project{Name: "Tower A"}
	assert.True(t, p.NameEquals("tower a"))
	assert.True(t, p.NameEquals("  TOWER A  "))
	assert.False(t, p.NameEquals("Tower B"))
}

func TestCreatedAt_FromID(t *testing.T) {
	created := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	p := Project{ID: created.UnixMilli()}
	assert.True(t, p.CreatedAt().Equal(created))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 3)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-03"`, string(b))

	var back Date
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, back.Equal(d.Time))
}
