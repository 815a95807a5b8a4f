package tmdb

// Raw TMDB v3 payload shapes. Only the fields the normalizers read are
// declared; everything else upstream sends is ignored by encoding/json.

// listItem is one trending/discover entry. Movie and TV entries share the
// struct: movies populate title/release_date, shows name/first_air_date, and
// mixed feeds add the media_type discriminator ("movie", "tv", "person").
type listItem struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type listResponse struct {
	Page         int        `json:"page"`
	Results      []listItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genre `json:"genres"`
}

type video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type castMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type releaseDate struct {
	Certification string `json:"certification"`
	Type          int    `json:"type"`
}

type releaseDatesResult struct {
	ISO3166  string        `json:"iso_3166_1"`
	Releases []releaseDate `json:"release_dates"`
}

type contentRating struct {
	ISO3166 string `json:"iso_3166_1"`
	Rating  string `json:"rating"`
}

// detailsResponse is the movie/tv union returned with
// append_to_response=videos,credits,external_ids,content_ratings,release_dates.
// Movie-only fields: title, release_date, runtime, release_dates.
// TV-only fields: name, first_air_date, episode_run_time, number_of_seasons,
// content_ratings.
type detailsResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Name            string  `json:"name"`
	Overview        string  `json:"overview"`
	PosterPath      string  `json:"poster_path"`
	BackdropPath    string  `json:"backdrop_path"`
	ReleaseDate     string  `json:"release_date"`
	FirstAirDate    string  `json:"first_air_date"`
	Runtime         int     `json:"runtime"`
	EpisodeRunTime  []int   `json:"episode_run_time"`
	NumberOfSeasons int     `json:"number_of_seasons"`
	VoteAverage     float64 `json:"vote_average"`
	Genres          []genre `json:"genres"`
	Videos          struct {
		Results []video `json:"results"`
	} `json:"videos"`
	Credits struct {
		Cast []castMember `json:"cast"`
	} `json:"credits"`
	ReleaseDates struct {
		Results []releaseDatesResult `json:"results"`
	} `json:"release_dates"`
	ContentRatings struct {
		Results []contentRating `json:"results"`
	} `json:"content_ratings"`
}

// upstreamError is TMDB's standard error envelope.
type upstreamError struct {
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
}
