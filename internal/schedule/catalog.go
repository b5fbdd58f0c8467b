package schedule

import (
	"context"

	"github.com/samber/lo"

	"github.com/gisung3253/kmu-back/internal/conflict"
	"github.com/gisung3253/kmu-back/internal/domain"
)

// Catalog is the read-only source of course sections. Implementations wrap
// read failures in utils.ErrCatalogUnavailable. The engine stamps Kind from the
// query it issued, so a Kind set by the implementation is not relied on.
type Catalog interface {
	// MajorSections returns major sections ordered by descending weight.
	MajorSections(ctx context.Context, department string, grade, semester int) ([]domain.Section, error)
	// LiberalSections returns liberal sections in the given areas ordered by
	// ascending ranking. Remote sections are left out unless includeRemote.
	LiberalSections(ctx context.Context, areas []string, includeRemote bool) ([]domain.Section, error)
	// LiberalSectionsAboveRanking returns physical liberal sections of area
	// whose ranking is strictly greater than ranking, ascending.
	LiberalSectionsAboveRanking(ctx context.Context, area string, ranking int) ([]domain.Section, error)
	// SectionByCode returns utils.ErrNotFound when kind has no such code.
	SectionByCode(ctx context.Context, kind domain.SectionKind, code string) (domain.Section, error)
	SectionsByName(ctx context.Context, kind domain.SectionKind, name string) ([]domain.Section, error)
}

// Logger is satisfied by echo.Logger and gommon's *log.Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Options tunes the bounded greedy search.
type Options struct {
	// MaxAttempts caps the failed passes of each retrying phase.
	MaxAttempts int
	// RemoteQuota caps remote sections across the whole timetable.
	RemoteQuota int
}

const DefaultMaxAttempts = 100

func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		RemoteQuota: conflict.DefaultRemoteQuota,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.RemoteQuota <= 0 {
		o.RemoteQuota = conflict.DefaultRemoteQuota
	}
	return o
}

// ofKind copies sections with Kind set to the catalog they were read from.
func ofKind(sections []domain.Section, kind domain.SectionKind) []domain.Section {
	return lo.Map(sections, func(s domain.Section, _ int) domain.Section {
		s.Kind = kind
		return s
	})
}
