package schedule

import (
	"context"
	"fmt"
	"io"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/labstack/gommon/log"
)

func slot(day, start, end string) domain.MeetingTime {
	return domain.MeetingTime{Day: day, Start: start, End: end}
}

func remoteSlot() domain.MeetingTime {
	return domain.MeetingTime{Day: domain.RemoteDay}
}

func major(code, name string, credit, weight int, times ...domain.MeetingTime) domain.Section {
	return domain.Section{
		Code:         code,
		Name:         name,
		Kind:         domain.KindMajor,
		Department:   "Computer Science",
		Grade:        2,
		Semester:     1,
		Credit:       credit,
		Weight:       weight,
		MeetingTimes: times,
	}
}

func liberal(code, name, area string, credit, ranking int, times ...domain.MeetingTime) domain.Section {
	return domain.Section{
		Code:         code,
		Name:         name,
		Kind:         domain.KindLiberal,
		Area:         area,
		Credit:       credit,
		Ranking:      ranking,
		MeetingTimes: times,
	}
}

func intPtr(n int) *int { return &n }

func request(majorCredits, liberalCredits int, areas ...string) domain.SelectionRequest {
	return domain.SelectionRequest{
		Department:     "Computer Science",
		Grade:          2,
		Semester:       1,
		MajorCredits:   intPtr(majorCredits),
		LiberalCredits: intPtr(liberalCredits),
		LiberalAreas:   areas,
	}
}

func quietLogger() *log.Logger {
	logger := log.New("test")
	logger.SetOutput(io.Discard)
	return logger
}

func codes(sections []domain.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Code)
	}
	return out
}

// brokenCatalog fails every read.
type brokenCatalog struct{}

var errBroken = fmt.Errorf("%w: connection refused", utils.ErrCatalogUnavailable)

func (brokenCatalog) MajorSections(context.Context, string, int, int) ([]domain.Section, error) {
	return nil, errBroken
}

func (brokenCatalog) LiberalSections(context.Context, []string, bool) ([]domain.Section, error) {
	return nil, errBroken
}

func (brokenCatalog) LiberalSectionsAboveRanking(context.Context, string, int) ([]domain.Section, error) {
	return nil, errBroken
}

func (brokenCatalog) SectionByCode(context.Context, domain.SectionKind, string) (domain.Section, error) {
	return domain.Section{}, errBroken
}

func (brokenCatalog) SectionsByName(context.Context, domain.SectionKind, string) ([]domain.Section, error) {
	return nil, errBroken
}

// kindlessCatalog drops Kind from everything the wrapped catalog returns.
type kindlessCatalog struct {
	Catalog
}

func stripKind(sections []domain.Section, err error) ([]domain.Section, error) {
	out := make([]domain.Section, 0, len(sections))
	for _, s := range sections {
		s.Kind = ""
		out = append(out, s)
	}
	return out, err
}

func (c kindlessCatalog) MajorSections(ctx context.Context, department string, grade, semester int) ([]domain.Section, error) {
	return stripKind(c.Catalog.MajorSections(ctx, department, grade, semester))
}

func (c kindlessCatalog) LiberalSections(ctx context.Context, areas []string, includeRemote bool) ([]domain.Section, error) {
	return stripKind(c.Catalog.LiberalSections(ctx, areas, includeRemote))
}

func (c kindlessCatalog) LiberalSectionsAboveRanking(ctx context.Context, area string, ranking int) ([]domain.Section, error) {
	return stripKind(c.Catalog.LiberalSectionsAboveRanking(ctx, area, ranking))
}

func (c kindlessCatalog) SectionByCode(ctx context.Context, kind domain.SectionKind, code string) (domain.Section, error) {
	s, err := c.Catalog.SectionByCode(ctx, kind, code)
	s.Kind = ""
	return s, err
}
