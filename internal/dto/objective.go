package dto

import "github.com/noah-isme/outcome-stats-api/internal/models"

// UpsertCourseObjectivesRequest defines the objective list of a course offering.
type UpsertCourseObjectivesRequest struct {
	DeptAbbrev       string          `json:"dept_abbrev" validate:"required,max=16"`
	CourseNum        int             `json:"course_num" validate:"required,gt=0"`
	Semester         models.Semester `json:"semester" validate:"required,oneof=Fall Spring Summer Winter"`
	Year             int             `json:"year" validate:"required,gte=1900,lte=3000"`
	CourseInternalID int64           `json:"course_internal_id" validate:"required,gt=0"`
	Objectives       []string        `json:"objectives" validate:"required,min=1,dive,required"`
}

// ReplaceObjectivesRequest replaces the objective list of an existing record.
type ReplaceObjectivesRequest struct {
	Objectives []string `json:"objectives" validate:"required,dive,required"`
}

// ObjectiveMatchRequest stores the objective tags of every question or criterion.
type ObjectiveMatchRequest struct {
	Objectives [][]string `json:"objectives" validate:"required"`
}

// CourseObjectiveQuery captures list parameters.
type CourseObjectiveQuery struct {
	DeptAbbrev string `form:"dept"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}
