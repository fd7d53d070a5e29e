package response

const NoLikedMoviesMessage = "no high-rated movies yet"

type RecommendationResponse struct {
	Results   []MovieSummary `json:"results"`
	TopGenres []string       `json:"top_genres"`
	Message   string         `json:"message,omitempty"`
}

// EmptyRecommendations is the payload for a user without liked movies
func EmptyRecommendations() RecommendationResponse {
	return RecommendationResponse{
		Results:   []MovieSummary{},
		TopGenres: []string{},
		Message:   NoLikedMoviesMessage,
	}
}
