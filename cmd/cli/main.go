package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gisung3253/kmu-back/internal/config"
	"github.com/gisung3253/kmu-back/internal/domain"
	"github.com/gisung3253/kmu-back/internal/repository/csvstore"
	"github.com/gisung3253/kmu-back/internal/schedule"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg := config.Load()

	catalogDir := flag.String("catalog", cfg.CatalogDir, "directory holding major.csv and liberal.csv")
	department := flag.String("department", "", "department of the major sections")
	grade := flag.Int("grade", 0, "grade of the student")
	semester := flag.Int("semester", 0, "semester to plan")
	majorCredits := flag.Int("major", 0, "major credits to fill")
	liberalCredits := flag.Int("liberal", 0, "liberal credits to fill")
	areas := flag.String("areas", "", "comma separated liberal areas; add "+domain.RemotePreferred+" to prefer remote sections")
	recommend := flag.String("recommend", "", "comma separated codes of an existing timetable to rebuild instead of generating")
	alternatives := flag.String("alternatives", "", "course code to list same-slot alternatives for")
	export := flag.String("export", "", "write the timetable as CSV to this path")
	flag.Parse()

	logger := log.New("cli")
	logger.SetLevel(cfg.LogLevel)

	store, err := csvstore.Load(*catalogDir)
	if err != nil {
		logger.Fatalf("loading catalog: %v", err)
	}

	opts := schedule.Options{MaxAttempts: cfg.MaxAttempts, RemoteQuota: cfg.RemoteQuota}
	ctx := context.Background()

	var output any
	var timetable *domain.Timetable

	switch {
	case *alternatives != "":
		set, err := schedule.NewResolver(store, opts, logger).FindAlternatives(ctx, *alternatives)
		if err != nil {
			logger.Fatalf("finding alternatives: %v", err)
		}
		output = set
	case *recommend != "":
		timetable, err = schedule.NewResolver(store, opts, logger).RecommendAlternativeTimetable(ctx, splitList(*recommend))
		if err != nil {
			logger.Fatalf("recommending timetable: %v", err)
		}
		output = timetable
	default:
		req := domain.SelectionRequest{
			Department:     *department,
			Grade:          *grade,
			Semester:       *semester,
			MajorCredits:   majorCredits,
			LiberalCredits: liberalCredits,
			LiberalAreas:   splitList(*areas),
		}
		result, err := schedule.NewGenerator(store, opts, logger).Generate(ctx, req)
		if err != nil {
			logger.Fatalf("generating timetable: %v", err)
		}
		if !result.Meta.Success {
			logger.Warnf("credit targets not met: major %d/%d, liberal %d/%d",
				result.Meta.ActualMajorCredits, result.Meta.RequestedMajorCredits,
				result.Meta.ActualLiberalCredits, result.Meta.RequestedLiberalCredits)
		}
		timetable = &result.Timetable
		output = result
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		logger.Fatalf("writing result: %v", err)
	}

	if *export != "" && timetable != nil {
		if err := exportTimetable(*export, timetable); err != nil {
			logger.Fatalf("%v", err)
		}
		fmt.Fprintf(os.Stderr, "timetable written to %s\n", *export)
	}
}

func exportTimetable(path string, timetable *domain.Timetable) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	return csvstore.WriteTimetable(out, timetable)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
