package csvstore

import (
	"fmt"
	"io"
	"strings"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gocarina/gocsv"
)

// TimetableRow is one exported section of a timetable.
type TimetableRow struct {
	Bucket       string `csv:"bucket"`
	Role         string `csv:"role"`
	Code         string `csv:"code"`
	Name         string `csv:"name"`
	Credit       int    `csv:"credit"`
	Area         string `csv:"area"`
	MeetingTimes string `csv:"meeting_times"`
}

// TimetableRows flattens t, offline before online and majors before liberals.
func TimetableRows(t *domain.Timetable) []*TimetableRow {
	var rows []*TimetableRow
	add := func(bucket string, sections []domain.Section) {
		for _, s := range sections {
			rows = append(rows, &TimetableRow{
				Bucket:       bucket,
				Role:         string(s.Kind),
				Code:         s.Code,
				Name:         s.Name,
				Credit:       s.Credit,
				Area:         s.Area,
				MeetingTimes: formatMeetingTimes(s.MeetingTimes),
			})
		}
	}
	add("offline", t.Offline.Major)
	add("offline", t.Offline.Liberal)
	add("online", t.Online.Major)
	add("online", t.Online.Liberal)
	return rows
}

// WriteTimetable writes t as CSV with a header row.
func WriteTimetable(w io.Writer, t *domain.Timetable) error {
	rows := TimetableRows(t)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("export timetable: %w", err)
	}
	return nil
}

func formatMeetingTimes(times []domain.MeetingTime) string {
	parts := make([]string, 0, len(times))
	for _, t := range times {
		if t.Day == domain.RemoteDay {
			parts = append(parts, t.Day)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s-%s", t.Day, t.Start, t.End))
	}
	return strings.Join(parts, "; ")
}
