package request

import (
	"net/url"
	"strings"

	"movie-rater/pkg/utils"
)

type SearchRequest struct {
	Query        string `json:"query" validate:"required,max=200"`
	Page         int    `json:"page" validate:"min=1,max=500"`
	Language     string `json:"language" validate:"omitempty,bcp47_language_tag"`
	IncludeAdult bool   `json:"include_adult"`
}

// SearchFromQuery maps the search query string; the page defaults to 1
func SearchFromQuery(q url.Values) (SearchRequest, error) {
	page, err := queryInt(q, "page", DefaultPage)
	if err != nil {
		return SearchRequest{}, err
	}

	return SearchRequest{
		Query:        strings.TrimSpace(q.Get("query")),
		Page:         page,
		Language:     q.Get("language"),
		IncludeAdult: utils.ParseBool(q.Get("include_adult"), false),
	}, nil
}

type NowPlayingRequest struct {
	Page int `json:"page" validate:"min=1,max=500"`
}

func NowPlayingFromQuery(q url.Values) (NowPlayingRequest, error) {
	page, err := queryInt(q, "page", DefaultPage)
	return NowPlayingRequest{Page: page}, err
}
