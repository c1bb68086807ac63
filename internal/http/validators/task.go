package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if utf8.RuneCountInString(r.Title) > model.TitleMaxLen {
		return echo.NewHTTPError(http.StatusBadRequest, "title must not exceed 200 characters")
	}
	if utf8.RuneCountInString(r.Description) > model.DescriptionMaxLen {
		return echo.NewHTTPError(http.StatusBadRequest, "description must not exceed 1000 characters")
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title == nil && r.Description == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one of title or description is required")
	}
	if r.Title != nil {
		if *r.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
		}
		if utf8.RuneCountInString(*r.Title) > model.TitleMaxLen {
			return echo.NewHTTPError(http.StatusBadRequest, "title must not exceed 200 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > model.DescriptionMaxLen {
		return echo.NewHTTPError(http.StatusBadRequest, "description must not exceed 1000 characters")
	}
	return nil
}
