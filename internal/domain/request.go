package domain

import (
	"fmt"
	"strings"

	"github.com/gisung3253/kmu-back/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SelectionRequest is the caller-supplied generation target. Credit totals
// are pointers so that an absent field can be told apart from zero.
type SelectionRequest struct {
	Department     string   `json:"department" validate:"required"`
	Grade          int      `json:"grade" validate:"required,min=1"`
	Semester       int      `json:"semester" validate:"required,min=1"`
	MajorCredits   *int     `json:"majorCredits" validate:"required,min=0"`
	LiberalCredits *int     `json:"liberalCredits" validate:"required,min=0"`
	LiberalAreas   []string `json:"liberalAreas" validate:"omitempty,dive,required"`
}

// Validate reports missing or malformed fields as utils.ErrInvalidRequest.
func (r SelectionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}
	if r.LiberalTarget() > 0 {
		if areas, _ := r.Areas(); len(areas) == 0 {
			return fmt.Errorf("%w: liberalAreas must name at least one area when liberalCredits is positive", utils.ErrInvalidRequest)
		}
	}
	return nil
}

func (r SelectionRequest) MajorTarget() int {
	if r.MajorCredits == nil {
		return 0
	}
	return *r.MajorCredits
}

func (r SelectionRequest) LiberalTarget() int {
	if r.LiberalCredits == nil {
		return 0
	}
	return *r.LiberalCredits
}

// Areas returns the requested liberal areas in input order without the
// RemotePreferred token, and whether the token was present.
func (r SelectionRequest) Areas() (areas []string, remotePreferred bool) {
	seen := make(map[string]struct{}, len(r.LiberalAreas))
	for _, area := range r.LiberalAreas {
		area = strings.TrimSpace(area)
		if area == RemotePreferred {
			remotePreferred = true
			continue
		}
		if _, dup := seen[area]; dup || area == "" {
			continue
		}
		seen[area] = struct{}{}
		areas = append(areas, area)
	}
	return areas, remotePreferred
}

// RecommendRequest lists the codes of a previously generated timetable.
type RecommendRequest struct {
	Codes []string `json:"codes" validate:"required,min=1,dive,required"`
}

func (r RecommendRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}
	return nil
}
