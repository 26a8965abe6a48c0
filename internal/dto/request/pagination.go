package request

import (
	"net/url"
	"strconv"

	"clothing-shop/pkg/utils"
)

const (
	DefaultPerPage = 10
	// Hard cap: list endpoints never hand out more than 10 rows per page.
	MaxPerPage = 10
)

type PaginatedRequest struct {
	Page    int
	PerPage int
}

// PaginationFromQuery reads num_page and limit query parameters,
// falling back to page 1 / 10 rows and clamping at the cap.
func PaginationFromQuery(q url.Values) PaginatedRequest {
	page := parsePositiveInt(q.Get("num_page"), 1)
	perPage := parsePositiveInt(q.Get("limit"), DefaultPerPage)
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return PaginatedRequest{Page: page, PerPage: perPage}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PerPage)
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}

func parsePositiveInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
