package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gisung3253/kmu-back/internal/conflict"
	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
)

// Resolver finds replacement sections for an existing timetable.
type Resolver struct {
	catalog Catalog
	opts    Options
	logger  Logger
}

func NewResolver(catalog Catalog, opts Options, logger Logger) *Resolver {
	if logger == nil {
		logger = log.New("schedule")
	}
	return &Resolver{catalog: catalog, opts: opts.withDefaults(), logger: logger}
}

// lookup finds code in the major catalog and falls back to the liberal one.
// Codes are assumed unique across both catalogs; if one is not, the major
// section shadows the liberal one.
func (r *Resolver) lookup(ctx context.Context, code string) (domain.Section, error) {
	s, err := r.catalog.SectionByCode(ctx, domain.KindMajor, code)
	if err == nil {
		s.Kind = domain.KindMajor
		return s, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return s, err
	}
	s, err = r.catalog.SectionByCode(ctx, domain.KindLiberal, code)
	if err != nil {
		return s, err
	}
	s.Kind = domain.KindLiberal
	return s, nil
}

// FindAlternatives returns the other sections of the same course that meet
// in exactly the same first slot. Major alternatives must also share the
// semester.
func (r *Resolver) FindAlternatives(ctx context.Context, code string) (*domain.AlternativeSet, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", utils.ErrInvalidRequest)
	}

	current, err := r.lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	set := &domain.AlternativeSet{Current: current, Alternatives: []domain.Section{}}
	slot, ok := current.FirstMeeting()
	if !ok {
		r.logger.Warnf("section %s has no meeting times; no alternatives", code)
		return set, nil
	}

	siblings, err := r.catalog.SectionsByName(ctx, current.Kind, current.Name)
	if err != nil {
		return nil, err
	}

	set.Alternatives = lo.Filter(siblings, func(s domain.Section, _ int) bool {
		if s.Code == current.Code {
			return false
		}
		if current.Kind == domain.KindMajor && s.Semester != current.Semester {
			return false
		}
		first, ok := s.FirstMeeting()
		return ok && first == slot
	})
	return set, nil
}

// RecommendAlternativeTimetable rebuilds a timetable from the codes of a
// previous one. Majors and remote sections are kept as they are. Each
// physical liberal section is swapped for the best lower-ranked section of
// the same area that fits, or kept when none does. A replacement must also
// clear the originals still waiting their turn, so keeping one of them later
// never breaks the timetable.
func (r *Resolver) RecommendAlternativeTimetable(ctx context.Context, codes []string) (*domain.Timetable, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: at least one course code is required", utils.ErrInvalidRequest)
	}
	excluded := make(map[string]struct{}, len(codes))
	for i, code := range codes {
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%w: code at index %d is empty", utils.ErrInvalidRequest, i)
		}
		excluded[strings.TrimSpace(code)] = struct{}{}
	}

	sections := make([]domain.Section, 0, len(excluded))
	for _, code := range lo.Uniq(lo.Map(codes, func(c string, _ int) string { return strings.TrimSpace(c) })) {
		s, err := r.lookup(ctx, code)
		if errors.Is(err, utils.ErrNotFound) {
			r.logger.Warnf("skipping unknown course code %s", code)
			continue
		}
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	timetable := domain.NewTimetable()
	var replaceable []domain.Section
	for _, s := range sections {
		remote := conflict.IsRemote(s)
		if s.Kind == domain.KindMajor || remote {
			timetable.Add(s, remote)
			continue
		}
		replaceable = append(replaceable, s)
	}

	for i, original := range replaceable {
		candidates, err := r.catalog.LiberalSectionsAboveRanking(ctx, original.Area, original.Ranking)
		if err != nil {
			return nil, err
		}
		pending := replaceable[i+1:]
		replacement, ok := lo.Find(ofKind(candidates, domain.KindLiberal), func(c domain.Section) bool {
			if _, dropped := excluded[c.Code]; dropped {
				return false
			}
			if conflict.IsRemote(c) || timetable.HasName(domain.KindLiberal, c.Name) {
				return false
			}
			// Originals not yet processed may be kept, so a replacement must
			// leave room for them.
			if lo.SomeBy(pending, func(p domain.Section) bool {
				return p.Name == c.Name || conflict.SectionsConflict(p, c)
			}) {
				return false
			}
			return conflict.Admits(timetable, c, r.opts.RemoteQuota)
		})
		if !ok {
			r.logger.Infof("no replacement fits for %s (%s, ranking %d); keeping it", original.Code, original.Area, original.Ranking)
			timetable.Add(original, false)
			continue
		}
		r.logger.Debugf("replacing %s with %s", original.Code, replacement.Code)
		timetable.Add(replacement, false)
	}
	return timetable, nil
}
