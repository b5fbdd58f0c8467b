// Package conflict decides whether course sections can share a timetable.
//
// Every function here is a pure predicate over domain.Section values. A
// section whose first meeting-time entry has day domain.RemoteDay is remote:
// it never takes part in pairwise time comparison and is instead bounded by
// a remote quota counted over the whole timetable. Any malformed meeting
// time fails closed, i.e. it conflicts with everything.
package conflict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/samber/lo"
)

// DefaultRemoteQuota is the number of remote sections a timetable may hold.
const DefaultRemoteQuota = 2

// IsRemote reports whether the section's first meeting-time entry is remote.
func IsRemote(s domain.Section) bool {
	first, ok := s.FirstMeeting()
	return ok && first.Day == domain.RemoteDay
}

// CountRemote returns how many of the sections are remote.
func CountRemote(sections []domain.Section) int {
	return lo.CountBy(sections, IsRemote)
}

// Minutes converts an "HH:MM" wall-clock string into minutes after midnight.
func Minutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", utils.ErrMalformedMeetingTime, clock)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", utils.ErrMalformedMeetingTime, clock)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", utils.ErrMalformedMeetingTime, clock)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q", utils.ErrMalformedMeetingTime, clock)
	}
	return hours*60 + minutes, nil
}

// interval parses a physical meeting time into its half-open [start, end).
func interval(t domain.MeetingTime) (start, end int, err error) {
	if strings.TrimSpace(t.Day) == "" {
		return 0, 0, fmt.Errorf("%w: missing day", utils.ErrMalformedMeetingTime)
	}
	if start, err = Minutes(t.Start); err != nil {
		return 0, 0, err
	}
	if end, err = Minutes(t.End); err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: %s-%s ends before it starts", utils.ErrMalformedMeetingTime, t.Start, t.End)
	}
	return start, end, nil
}

// TimesOverlap reports whether two meeting times share a day and their
// half-open intervals intersect. Touching endpoints do not overlap.
func TimesOverlap(a, b domain.MeetingTime) (bool, error) {
	if a.Day == domain.RemoteDay || b.Day == domain.RemoteDay {
		return false, nil
	}
	startA, endA, err := interval(a)
	if err != nil {
		return false, err
	}
	startB, endB, err := interval(b)
	if err != nil {
		return false, err
	}
	if a.Day != b.Day {
		return false, nil
	}
	return startA < endB && startB < endA, nil
}

// Check returns an error when a physical section has no usable meeting times.
func Check(s domain.Section) error {
	if IsRemote(s) {
		return nil
	}
	if len(s.MeetingTimes) == 0 {
		return fmt.Errorf("%w: section %s has no meeting times", utils.ErrMalformedMeetingTime, s.Code)
	}
	for _, t := range s.MeetingTimes {
		if _, _, err := interval(t); err != nil {
			return fmt.Errorf("section %s: %w", s.Code, err)
		}
	}
	return nil
}

// SectionsConflict reports whether two sections cannot both be held. Remote
// sections never conflict; a malformed physical section always does.
func SectionsConflict(a, b domain.Section) bool {
	if IsRemote(a) || IsRemote(b) {
		return false
	}
	if Check(a) != nil || Check(b) != nil {
		return true
	}
	for _, ta := range a.MeetingTimes {
		for _, tb := range b.MeetingTimes {
			overlap, err := TimesOverlap(ta, tb)
			if err != nil || overlap {
				return true
			}
		}
	}
	return false
}

// CanAdmit is the admission rule shared by generation and resolution.
// A remote candidate is admitted while remoteCount, counted over the whole
// timetable, is below quota. A physical candidate is admitted when it
// conflicts with none of the already selected physical sections.
func CanAdmit(candidate domain.Section, physical []domain.Section, remoteCount, quota int) bool {
	if IsRemote(candidate) {
		return remoteCount < quota
	}
	if Check(candidate) != nil {
		return false
	}
	return !lo.SomeBy(physical, func(selected domain.Section) bool {
		return SectionsConflict(candidate, selected)
	})
}

// Admits applies CanAdmit against the current state of a timetable.
func Admits(t *domain.Timetable, candidate domain.Section, quota int) bool {
	return CanAdmit(candidate, t.Physical(), CountRemote(t.Remote()), quota)
}
