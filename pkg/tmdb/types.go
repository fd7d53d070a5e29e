package tmdb

// MovieResult is a movie as it appears in list endpoints (trending, search,
// discover, now playing).
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    *string `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate *string `json:"release_date"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
}

// Page is a paginated list response.
type Page struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Genre is an entry of the genre taxonomy.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Movie is the full movie record returned by /movie/{id} with credits appended.
type Movie struct {
	MovieResult
	Runtime *int     `json:"runtime"`
	Genres  []Genre  `json:"genres"`
	Credits *Credits `json:"credits,omitempty"`
}

// SearchParams are the inputs of a title search.
type SearchParams struct {
	Query        string
	Page         int
	Language     string
	IncludeAdult bool
}

// DiscoverParams are the inputs of a discover query.
type DiscoverParams struct {
	GenreIDs []int
	SortBy   string
	Page     int
}

const SortPopularityDesc = "popularity.desc"
