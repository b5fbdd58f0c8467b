package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/gommon/log"
)

const majorColumns = `code, name, department, grade, semester, credit, weight, time_json`

const liberalColumns = `code, name, area, credit, ranking, time_json`

func (s *Storage) MajorSections(ctx context.Context, department string, grade, semester int) ([]domain.Section, error) {
	const query = `
		SELECT ` + majorColumns + `
		FROM major
		WHERE department = $1 AND grade = $2 AND semester = $3
		ORDER BY weight DESC, code;
	`

	rows, err := s.pool.Query(ctx, query, department, grade, semester)
	if err != nil {
		return nil, unavailable(err)
	}
	return collect(rows, scanMajor)
}

func (s *Storage) LiberalSections(ctx context.Context, areas []string, includeRemote bool) ([]domain.Section, error) {
	const query = `
		SELECT ` + liberalColumns + `
		FROM liberal
		WHERE area = ANY($1)
		AND ($2 OR time_json->0->>'day' IS DISTINCT FROM $3)
		ORDER BY ranking ASC, code;
	`

	rows, err := s.pool.Query(ctx, query, areas, includeRemote, domain.RemoteDay)
	if err != nil {
		return nil, unavailable(err)
	}
	return collect(rows, scanLiberal)
}

func (s *Storage) LiberalSectionsAboveRanking(ctx context.Context, area string, ranking int) ([]domain.Section, error) {
	const query = `
		SELECT ` + liberalColumns + `
		FROM liberal
		WHERE area = $1
		AND ranking > $2
		AND time_json->0->>'day' IS DISTINCT FROM $3
		ORDER BY ranking ASC, code;
	`

	rows, err := s.pool.Query(ctx, query, area, ranking, domain.RemoteDay)
	if err != nil {
		return nil, unavailable(err)
	}
	return collect(rows, scanLiberal)
}

func (s *Storage) SectionByCode(ctx context.Context, kind domain.SectionKind, code string) (domain.Section, error) {
	query, scan := `SELECT `+majorColumns+` FROM major WHERE code = $1 LIMIT 1;`, scanMajor
	if kind == domain.KindLiberal {
		query, scan = `SELECT `+liberalColumns+` FROM liberal WHERE code = $1 LIMIT 1;`, scanLiberal
	}

	section, err := scan(s.pool.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Section{}, fmt.Errorf("%w: %s", utils.ErrNotFound, code)
	}
	if err != nil {
		return domain.Section{}, unavailable(err)
	}
	return section, nil
}

func (s *Storage) SectionsByName(ctx context.Context, kind domain.SectionKind, name string) ([]domain.Section, error) {
	query, scan := `SELECT `+majorColumns+` FROM major WHERE name = $1 ORDER BY code;`, scanMajor
	if kind == domain.KindLiberal {
		query, scan = `SELECT `+liberalColumns+` FROM liberal WHERE name = $1 ORDER BY code;`, scanLiberal
	}

	rows, err := s.pool.Query(ctx, query, name)
	if err != nil {
		return nil, unavailable(err)
	}
	return collect(rows, scan)
}

func collect(rows pgx.Rows, scan func(pgx.Row) (domain.Section, error)) ([]domain.Section, error) {
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		section, err := scan(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return sections, nil
}

func scanMajor(row pgx.Row) (domain.Section, error) {
	var sec domain.Section
	var timeJSON any
	err := row.Scan(
		&sec.Code,
		&sec.Name,
		&sec.Department,
		&sec.Grade,
		&sec.Semester,
		&sec.Credit,
		&sec.Weight,
		&timeJSON,
	)
	if err != nil {
		return sec, err
	}

	sec.Kind = domain.KindMajor
	sec.MeetingTimes = meetingTimes(sec.Code, timeJSON)
	return sec, nil
}

func scanLiberal(row pgx.Row) (domain.Section, error) {
	var sec domain.Section
	var timeJSON any
	err := row.Scan(
		&sec.Code,
		&sec.Name,
		&sec.Area,
		&sec.Credit,
		&sec.Ranking,
		&timeJSON,
	)
	if err != nil {
		return sec, err
	}

	sec.Kind = domain.KindLiberal
	sec.MeetingTimes = meetingTimes(sec.Code, timeJSON)
	return sec, nil
}

// meetingTimes leaves an undecodable payload empty so the section fails
// every conflict check instead of aborting the whole read.
func meetingTimes(code string, raw any) []domain.MeetingTime {
	times, err := domain.DecodeMeetingTimes(raw)
	if err != nil {
		log.Warnf("section %s: %v", code, err)
		return nil
	}
	return times
}
