package request

import (
	"fmt"
	"net/url"
	"strconv"

	"movie-rater/pkg/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit far from overflowing
	MaxPage = 100000
)

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1,max=100000"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}

// PaginationFromQuery reads page and limit, falling back to the defaults
// when a parameter is absent. Values that are present must be integers;
// range checks are left to the validator.
func PaginationFromQuery(q url.Values) (PaginatedRequest, error) {
	req := PaginatedRequest{Page: DefaultPage, Limit: DefaultLimit}

	var err error
	if req.Page, err = queryInt(q, "page", DefaultPage); err != nil {
		return req, err
	}
	if req.Limit, err = queryInt(q, "limit", DefaultLimit); err != nil {
		return req, err
	}
	return req, nil
}

func queryInt(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
