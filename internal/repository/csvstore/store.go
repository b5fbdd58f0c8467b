// Package csvstore serves the course catalog from CSV files held in memory.
//
// It expects major.csv and liberal.csv with a header row. The time_json
// column carries the meeting times as a JSON array, the same payload the
// database stores.
package csvstore

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/gisung3253/kmu-back/internal/conflict"
	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/gocarina/gocsv"
	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
)

const (
	MajorFile   = "major.csv"
	LiberalFile = "liberal.csv"
)

type majorRow struct {
	Code       string `csv:"code"`
	Name       string `csv:"name"`
	Department string `csv:"department"`
	Grade      int    `csv:"grade"`
	Semester   int    `csv:"semester"`
	Credit     int    `csv:"credit"`
	Weight     int    `csv:"weight"`
	TimeJSON   string `csv:"time_json"`
}

type liberalRow struct {
	Code     string `csv:"code"`
	Name     string `csv:"name"`
	Area     string `csv:"area"`
	Credit   int    `csv:"credit"`
	Ranking  int    `csv:"ranking"`
	TimeJSON string `csv:"time_json"`
}

// Store is an immutable in-memory catalog.
type Store struct {
	majors   []domain.Section
	liberals []domain.Section
}

// New builds a store from sections, stamping each with its catalog kind.
func New(majors, liberals []domain.Section) *Store {
	s := &Store{
		majors:   slices.Clone(majors),
		liberals: slices.Clone(liberals),
	}
	for i := range s.majors {
		s.majors[i].Kind = domain.KindMajor
	}
	for i := range s.liberals {
		s.liberals[i].Kind = domain.KindLiberal
	}
	return s
}

// Load reads major.csv and liberal.csv from dir.
func Load(dir string) (*Store, error) {
	majorFile, err := os.Open(filepath.Join(dir, MajorFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}
	defer majorFile.Close()

	liberalFile, err := os.Open(filepath.Join(dir, LiberalFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
	}
	defer liberalFile.Close()

	return LoadReaders(majorFile, liberalFile)
}

func LoadReaders(majorCSV, liberalCSV io.Reader) (*Store, error) {
	var majorRows []*majorRow
	if err := gocsv.Unmarshal(majorCSV, &majorRows); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", utils.ErrCatalogUnavailable, MajorFile, err)
	}

	var liberalRows []*liberalRow
	if err := gocsv.Unmarshal(liberalCSV, &liberalRows); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", utils.ErrCatalogUnavailable, LiberalFile, err)
	}

	majors := lo.Map(majorRows, func(r *majorRow, _ int) domain.Section {
		return domain.Section{
			Code:         r.Code,
			Name:         r.Name,
			Department:   r.Department,
			Grade:        r.Grade,
			Semester:     r.Semester,
			Credit:       r.Credit,
			Weight:       r.Weight,
			MeetingTimes: meetingTimes(r.Code, r.TimeJSON),
		}
	})
	liberals := lo.Map(liberalRows, func(r *liberalRow, _ int) domain.Section {
		return domain.Section{
			Code:         r.Code,
			Name:         r.Name,
			Area:         r.Area,
			Credit:       r.Credit,
			Ranking:      r.Ranking,
			MeetingTimes: meetingTimes(r.Code, r.TimeJSON),
		}
	})

	return New(majors, liberals), nil
}

func meetingTimes(code, raw string) []domain.MeetingTime {
	times, err := domain.DecodeMeetingTimes(raw)
	if err != nil {
		log.Warnf("section %s: %v", code, err)
		return nil
	}
	return times
}

func byWeightDesc(a, b domain.Section) int {
	return cmp.Or(cmp.Compare(b.Weight, a.Weight), cmp.Compare(a.Code, b.Code))
}

func byRankingAsc(a, b domain.Section) int {
	return cmp.Or(cmp.Compare(a.Ranking, b.Ranking), cmp.Compare(a.Code, b.Code))
}

func (s *Store) MajorSections(_ context.Context, department string, grade, semester int) ([]domain.Section, error) {
	out := lo.Filter(s.majors, func(sec domain.Section, _ int) bool {
		return sec.Department == department && sec.Grade == grade && sec.Semester == semester
	})
	slices.SortStableFunc(out, byWeightDesc)
	return out, nil
}

func (s *Store) LiberalSections(_ context.Context, areas []string, includeRemote bool) ([]domain.Section, error) {
	out := lo.Filter(s.liberals, func(sec domain.Section, _ int) bool {
		return lo.Contains(areas, sec.Area) && (includeRemote || !conflict.IsRemote(sec))
	})
	slices.SortStableFunc(out, byRankingAsc)
	return out, nil
}

func (s *Store) LiberalSectionsAboveRanking(_ context.Context, area string, ranking int) ([]domain.Section, error) {
	out := lo.Filter(s.liberals, func(sec domain.Section, _ int) bool {
		return sec.Area == area && sec.Ranking > ranking && !conflict.IsRemote(sec)
	})
	slices.SortStableFunc(out, byRankingAsc)
	return out, nil
}

func (s *Store) SectionByCode(_ context.Context, kind domain.SectionKind, code string) (domain.Section, error) {
	sec, ok := lo.Find(s.catalog(kind), func(sec domain.Section) bool { return sec.Code == code })
	if !ok {
		return domain.Section{}, fmt.Errorf("%w: %s", utils.ErrNotFound, code)
	}
	return sec, nil
}

func (s *Store) SectionsByName(_ context.Context, kind domain.SectionKind, name string) ([]domain.Section, error) {
	out := lo.Filter(s.catalog(kind), func(sec domain.Section, _ int) bool { return sec.Name == name })
	slices.SortStableFunc(out, func(a, b domain.Section) int { return cmp.Compare(a.Code, b.Code) })
	return out, nil
}

func (s *Store) catalog(kind domain.SectionKind) []domain.Section {
	if kind == domain.KindMajor {
		return s.majors
	}
	return s.liberals
}
