package domain

// RoleLists holds the sections of one delivery bucket split by role.
type RoleLists struct {
	Major   []Section `json:"major"`
	Liberal []Section `json:"liberal"`
}

// Timetable is the working and output state of generation. Offline holds
// sections with physical meeting slots, Online holds remote sections.
type Timetable struct {
	Offline RoleLists `json:"offline"`
	Online  RoleLists `json:"online"`
}

func NewTimetable() *Timetable {
	return &Timetable{
		Offline: RoleLists{Major: []Section{}, Liberal: []Section{}},
		Online:  RoleLists{Major: []Section{}, Liberal: []Section{}},
	}
}

// Add places s in the online bucket when remote is set, otherwise offline.
func (t *Timetable) Add(s Section, remote bool) {
	bucket := &t.Offline
	if remote {
		bucket = &t.Online
	}
	if s.Kind == KindMajor {
		bucket.Major = append(bucket.Major, s)
	} else {
		bucket.Liberal = append(bucket.Liberal, s)
	}
}

// Physical returns every offline section, majors first.
func (t *Timetable) Physical() []Section {
	out := make([]Section, 0, len(t.Offline.Major)+len(t.Offline.Liberal))
	out = append(out, t.Offline.Major...)
	return append(out, t.Offline.Liberal...)
}

func (t *Timetable) Remote() []Section {
	out := make([]Section, 0, len(t.Online.Major)+len(t.Online.Liberal))
	out = append(out, t.Online.Major...)
	return append(out, t.Online.Liberal...)
}

func (t *Timetable) Sections() []Section {
	return append(t.Physical(), t.Remote()...)
}

func (t *Timetable) Contains(code string) bool {
	for _, s := range t.Sections() {
		if s.Code == code {
			return true
		}
	}
	return false
}

// HasName reports whether a section titled name already holds the given role.
func (t *Timetable) HasName(kind SectionKind, name string) bool {
	for _, s := range t.Sections() {
		if s.Kind == kind && s.Name == name {
			return true
		}
	}
	return false
}

func (t *Timetable) Credits(kind SectionKind) int {
	total := 0
	for _, s := range t.Sections() {
		if s.Kind == kind {
			total += s.Credit
		}
	}
	return total
}

// GenerationMeta compares requested and achieved credits. Success is false
// whenever either role fell short or overshot; that is a partial result,
// not an error.
type GenerationMeta struct {
	RequestedMajorCredits   int            `json:"requestedMajorCredits"`
	ActualMajorCredits      int            `json:"actualMajorCredits"`
	RequestedLiberalCredits int            `json:"requestedLiberalCredits"`
	ActualLiberalCredits    int            `json:"actualLiberalCredits"`
	Success                 bool           `json:"success"`
	AreaDistribution        map[string]int `json:"areaDistribution"`
}

type GenerationResult struct {
	Timetable
	Meta GenerationMeta `json:"meta"`
}
