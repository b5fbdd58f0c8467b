package conflict

import (
	"errors"
	"testing"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(day, start, end string) domain.MeetingTime {
	return domain.MeetingTime{Day: day, Start: start, End: end}
}

func physical(code string, times ...domain.MeetingTime) domain.Section {
	return domain.Section{Code: code, Name: code, Credit: 3, MeetingTimes: times}
}

func remote(code string) domain.Section {
	return physical(code, slot(domain.RemoteDay, "", ""))
}

func TestMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"9:05", 545, true},
		{"24:00", 1440, true},
		{"24:01", 0, false},
		{"12:60", 0, false},
		{"1230", 0, false},
		{"ab:cd", 0, false},
		{"10:5", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.clock, func(t *testing.T) {
			got, err := Minutes(tc.clock)
			if !tc.ok {
				assert.ErrorIs(t, err, utils.ErrMalformedMeetingTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimesOverlap(t *testing.T) {
	a := slot("Mon", "09:00", "10:00")

	cases := []struct {
		name string
		b    domain.MeetingTime
		want bool
	}{
		{"touching endpoints", slot("Mon", "10:00", "11:00"), false},
		{"touching before", slot("Mon", "08:00", "09:00"), false},
		{"partial overlap", slot("Mon", "09:30", "10:30"), true},
		{"contained", slot("Mon", "09:15", "09:45"), true},
		{"identical", slot("Mon", "09:00", "10:00"), true},
		{"other day", slot("Tue", "09:00", "10:00"), false},
		{"remote", slot(domain.RemoteDay, "", ""), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TimesOverlap(a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			reversed, err := TimesOverlap(tc.b, a)
			require.NoError(t, err)
			assert.Equal(t, got, reversed)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := TimesOverlap(a, slot("Mon", "10:00", "09:00"))
		assert.True(t, errors.Is(err, utils.ErrMalformedMeetingTime))
	})
}

func TestSectionsConflict(t *testing.T) {
	mon := physical("A", slot("Mon", "09:00", "10:00"))

	t.Run("disjoint days never conflict", func(t *testing.T) {
		b := physical("B", slot("Tue", "09:00", "10:00"), slot("Thu", "09:00", "12:00"))
		assert.False(t, SectionsConflict(mon, b))
	})

	t.Run("any pair overlapping conflicts", func(t *testing.T) {
		b := physical("B", slot("Wed", "09:00", "10:00"), slot("Mon", "09:30", "10:30"))
		assert.True(t, SectionsConflict(mon, b))
		assert.True(t, SectionsConflict(b, mon))
	})

	t.Run("back to back sections fit", func(t *testing.T) {
		b := physical("B", slot("Mon", "10:00", "11:00"))
		assert.False(t, SectionsConflict(mon, b))
	})

	t.Run("remote never conflicts", func(t *testing.T) {
		assert.False(t, SectionsConflict(mon, remote("R")))
		assert.False(t, SectionsConflict(remote("R1"), remote("R2")))
	})

	t.Run("malformed fails closed", func(t *testing.T) {
		assert.True(t, SectionsConflict(mon, physical("X", slot("Fri", "noon", "13:00"))))
		assert.True(t, SectionsConflict(mon, physical("Y")))
	})
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote(remote("R")))
	assert.False(t, IsRemote(physical("A", slot("Mon", "09:00", "10:00"))))
	assert.False(t, IsRemote(physical("B", slot("Mon", "09:00", "10:00"), slot(domain.RemoteDay, "", ""))))
	assert.False(t, IsRemote(physical("C")))
}

func TestCountRemote(t *testing.T) {
	sections := []domain.Section{
		remote("R1"),
		physical("A", slot("Mon", "09:00", "10:00")),
		remote("R2"),
	}
	assert.Equal(t, 2, CountRemote(sections))
	assert.Equal(t, 0, CountRemote(nil))
}

func TestCanAdmit(t *testing.T) {
	selected := []domain.Section{
		physical("A", slot("Mon", "09:00", "10:30")),
		physical("B", slot("Wed", "13:00", "15:00")),
	}

	t.Run("physical without conflict", func(t *testing.T) {
		assert.True(t, CanAdmit(physical("C", slot("Mon", "10:30", "12:00")), selected, 0, DefaultRemoteQuota))
	})

	t.Run("physical with conflict", func(t *testing.T) {
		assert.False(t, CanAdmit(physical("C", slot("Wed", "14:00", "16:00")), selected, 0, DefaultRemoteQuota))
	})

	t.Run("remote below quota skips time checks", func(t *testing.T) {
		assert.True(t, CanAdmit(remote("R"), selected, 1, DefaultRemoteQuota))
	})

	t.Run("third remote is rejected", func(t *testing.T) {
		assert.False(t, CanAdmit(remote("R"), selected, 2, DefaultRemoteQuota))
	})

	t.Run("malformed candidate is rejected", func(t *testing.T) {
		assert.False(t, CanAdmit(physical("C"), nil, 0, DefaultRemoteQuota))
		assert.False(t, CanAdmit(physical("D", slot("Thu", "11:00", "10:00")), nil, 0, DefaultRemoteQuota))
	})
}

func TestAdmitsCountsWholeTimetable(t *testing.T) {
	timetable := domain.NewTimetable()
	first := remote("R1")
	first.Kind = domain.KindMajor
	second := remote("R2")
	second.Kind = domain.KindLiberal
	timetable.Add(first, true)
	timetable.Add(second, true)

	assert.False(t, Admits(timetable, remote("R3"), DefaultRemoteQuota))
	assert.True(t, Admits(timetable, physical("A", slot("Mon", "09:00", "10:00")), DefaultRemoteQuota))
	assert.Equal(t, 2, CountRemote(timetable.Remote()))
}
