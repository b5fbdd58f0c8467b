package schedule

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/gisung3253/kmu-back/internal/conflict"
	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
)

// Generator builds timetables with a bounded greedy search. It keeps no
// state between calls and is safe for concurrent use.
type Generator struct {
	catalog Catalog
	opts    Options
	logger  Logger
}

func NewGenerator(catalog Catalog, opts Options, logger Logger) *Generator {
	if logger == nil {
		logger = log.New("schedule")
	}
	return &Generator{catalog: catalog, opts: opts.withDefaults(), logger: logger}
}

// Generate picks major then liberal sections for req. Falling short of the
// credit targets is reported through Meta.Success, never as an error; errors
// are limited to invalid requests and catalog failures.
func (g *Generator) Generate(ctx context.Context, req domain.SelectionRequest) (*domain.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	majorTarget, liberalTarget := req.MajorTarget(), req.LiberalTarget()
	areas, remotePreferred := req.Areas()

	majors, err := g.catalog.MajorSections(ctx, req.Department, req.Grade, req.Semester)
	if err != nil {
		return nil, err
	}
	majors = ofKind(majors, domain.KindMajor)

	var liberals []domain.Section
	if liberalTarget > 0 {
		liberals, err = g.catalog.LiberalSections(ctx, areas, true)
		if err != nil {
			return nil, err
		}
		liberals = ofKind(liberals, domain.KindLiberal)
	}

	b := newBuilder(g.opts)

	remainingMajor := b.fillMajors(majors, majorTarget)
	if remainingMajor > 0 {
		g.logger.Warnf("major phase stopped after %d failed passes with %d of %d credits left (%s, grade %d, semester %d)",
			g.opts.MaxAttempts, remainingMajor, majorTarget, req.Department, req.Grade, req.Semester)
	}

	remainingLiberal := 0
	if liberalTarget > 0 {
		remainingLiberal = b.fillLiberals(liberals, areas, remotePreferred, liberalTarget)
		if remainingLiberal > 0 {
			g.logger.Warnf("liberal phase stopped with %d of %d credits left (areas %v)", remainingLiberal, liberalTarget, areas)
		}
	}

	meta := domain.GenerationMeta{
		RequestedMajorCredits:   majorTarget,
		ActualMajorCredits:      majorTarget - remainingMajor,
		RequestedLiberalCredits: liberalTarget,
		ActualLiberalCredits:    liberalTarget - remainingLiberal,
		AreaDistribution:        map[string]int{},
	}
	if liberalTarget > 0 {
		meta.AreaDistribution = maps.Clone(b.areaCount)
	}
	meta.Success = meta.ActualMajorCredits == majorTarget && meta.ActualLiberalCredits == liberalTarget

	g.logger.Debugf("generated timetable: major %d/%d, liberal %d/%d, %d remote",
		meta.ActualMajorCredits, majorTarget, meta.ActualLiberalCredits, liberalTarget, len(b.timetable.Remote()))

	return &domain.GenerationResult{Timetable: *b.timetable, Meta: meta}, nil
}

// builder is the per-call working state of one generation.
type builder struct {
	opts      Options
	timetable *domain.Timetable
	chosen    map[domain.SectionKind]map[string]struct{}
	areaCount map[string]int
}

func newBuilder(opts Options) *builder {
	return &builder{
		opts:      opts,
		timetable: domain.NewTimetable(),
		chosen: map[domain.SectionKind]map[string]struct{}{
			domain.KindMajor:   {},
			domain.KindLiberal: {},
		},
		areaCount: map[string]int{},
	}
}

// taken is the duplicate-title guard, kept per role.
func (b *builder) taken(s domain.Section) bool {
	_, ok := b.chosen[s.Kind][s.Name]
	return ok
}

func (b *builder) admits(s domain.Section) bool {
	return conflict.Admits(b.timetable, s, b.opts.RemoteQuota)
}

func (b *builder) remoteCount() int {
	return conflict.CountRemote(b.timetable.Remote())
}

func (b *builder) place(s domain.Section) {
	b.timetable.Add(s, conflict.IsRemote(s))
	b.chosen[s.Kind][s.Name] = struct{}{}
	if s.Kind == domain.KindLiberal {
		b.areaCount[s.Area]++
	}
}

// fillMajors repeatedly takes the first admissible candidate in catalog
// order, restarting the scan after every pick. A pass that finds nothing
// counts as a failed attempt. It returns the credits still missing.
func (b *builder) fillMajors(candidates []domain.Section, target int) int {
	remaining := target
	for attempts := 0; remaining > 0 && attempts < b.opts.MaxAttempts; {
		pick, ok := lo.Find(candidates, func(s domain.Section) bool {
			return !b.taken(s) && b.admits(s)
		})
		if !ok {
			attempts++
			continue
		}
		b.place(pick)
		remaining -= pick.Credit
	}
	return remaining
}

// fillLiberals runs the three liberal passes and returns the credits still
// missing. Candidates arrive in ascending ranking.
func (b *builder) fillLiberals(candidates []domain.Section, areas []string, remotePreferred bool, target int) int {
	remaining := target
	fits := func(s domain.Section) bool {
		return s.Credit <= remaining && !b.taken(s)
	}

	remote, physical := lo.FilterReject(candidates, func(s domain.Section, _ int) bool {
		return conflict.IsRemote(s)
	})

	// Remote sections first when asked for, up to the shared remote quota.
	if remotePreferred {
		for _, s := range remote {
			if remaining <= 0 || b.remoteCount() >= b.opts.RemoteQuota {
				break
			}
			if fits(s) && b.admits(s) {
				b.place(s)
				remaining -= s.Credit
			}
		}
	}

	// One physical section for each area not yet represented.
	for _, s := range physical {
		if remaining <= 0 {
			break
		}
		if b.areaCount[s.Area] > 0 {
			continue
		}
		if fits(s) && b.admits(s) {
			b.place(s)
			remaining -= s.Credit
		}
	}

	// Top up from the least represented area; ties keep the input order.
	for attempts := 0; remaining > 0 && attempts < b.opts.MaxAttempts; {
		placed := false
		for _, area := range b.areasByCoverage(areas) {
			pick, ok := lo.Find(candidates, func(s domain.Section) bool {
				return s.Area == area && fits(s) && b.admits(s)
			})
			if ok {
				b.place(pick)
				remaining -= pick.Credit
				placed = true
				break
			}
		}
		if !placed {
			attempts++
		}
	}
	return remaining
}

func (b *builder) areasByCoverage(areas []string) []string {
	ordered := slices.Clone(areas)
	slices.SortStableFunc(ordered, func(x, y string) int {
		return cmp.Compare(b.areaCount[x], b.areaCount[y])
	})
	return ordered
}
