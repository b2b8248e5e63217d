package services

import (
	"fmt"
	"strconv"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ValidatePaginationParams parses and bounds page/per_page query parameters
func ValidatePaginationParams(pageStr, perPageStr string) (int, int, error) {
	page := 1
	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("invalid page parameter: %q", pageStr)
		}
		page = parsed
	}

	perPage := defaultPerPage
	if perPageStr != "" {
		parsed, err := strconv.Atoi(perPageStr)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("invalid per_page parameter: %q", perPageStr)
		}
		if parsed > maxPerPage {
			return 0, 0, fmt.Errorf("per_page must not exceed %d", maxPerPage)
		}
		perPage = parsed
	}

	return page, perPage, nil
}

// Paginate slices a full result set for the requested page
func Paginate[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
