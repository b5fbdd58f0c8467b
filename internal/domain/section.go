package domain

// SectionKind is the catalog a section was read from.
type SectionKind string

const (
	KindMajor   SectionKind = "major"
	KindLiberal SectionKind = "liberal"
)

// RemoteDay is the day value marking a section without a physical meeting slot.
// It is only meaningful on the first meeting-time entry.
const RemoteDay = "remote"

// RemotePreferred is the liberal-area token asking for remote electives first.
// It is a preference, not an area.
const RemotePreferred = "remote-preferred"

type MeetingTime struct {
	Day   string `json:"day" mapstructure:"day"`
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

// Section is one offering of a course. Department, Grade, Semester and Weight
// apply to major sections; Area and Ranking apply to liberal sections.
type Section struct {
	Code         string        `db:"code" json:"code"`
	Name         string        `db:"name" json:"name"`
	Kind         SectionKind   `json:"type"`
	Department   string        `db:"department" json:"department,omitempty"`
	Grade        int           `db:"grade" json:"grade,omitempty"`
	Semester     int           `db:"semester" json:"semester,omitempty"`
	Area         string        `db:"area" json:"area,omitempty"`
	Credit       int           `db:"credit" json:"credit"`
	Ranking      int           `db:"ranking" json:"ranking,omitempty"`
	Weight       int           `db:"weight" json:"weight,omitempty"`
	MeetingTimes []MeetingTime `db:"time_json" json:"meetingTimes"`
}

// FirstMeeting returns the entry that decides whether the section is remote.
func (s Section) FirstMeeting() (MeetingTime, bool) {
	if len(s.MeetingTimes) == 0 {
		return MeetingTime{}, false
	}
	return s.MeetingTimes[0], true
}

// AlternativeSet is the answer to a same-course, same-slot lookup.
type AlternativeSet struct {
	Current      Section   `json:"current"`
	Alternatives []Section `json:"alternatives"`
}
