package models

// MediaType identifies a catalog entry kind in list context.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	// MediaTypeAll is accepted by the trending endpoint only; normalized
	// items always carry a concrete movie/tv type.
	MediaTypeAll MediaType = "all"
)

// Valid reports whether the media type names a concrete content kind.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// DetailType is the detail-context kind enum. It is deliberately a distinct
// type from MediaType: list records carry lowercase "movie"/"tv", detail
// records uppercase "MOVIE"/"SHOW", and the two are never interchanged
// without an explicit mapping.
type DetailType string

const (
	DetailTypeMovie DetailType = "MOVIE"
	DetailTypeShow  DetailType = "SHOW"
)

// DetailTypeFor maps a list-context media type to its detail-context enum.
func DetailTypeFor(m MediaType) DetailType {
	if m == MediaTypeTV {
		return DetailTypeShow
	}
	return DetailTypeMovie
}

// ContentItem is the canonical list-context catalog record. Upstream ids are
// numeric; ID is always their string form.
type ContentItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ImageURL        *string   `json:"imageUrl"`
	BackdropURL     *string   `json:"backdropUrl,omitempty"`
	Description     string    `json:"description,omitempty"`
	ReleaseDate     string    `json:"releaseDate,omitempty"`
	ReleaseYear     string    `json:"releaseYear,omitempty"`
	Type            MediaType `json:"type"`
	VoteAverage     float64   `json:"voteAverage,omitempty"`
	MatchPercentage int       `json:"matchPercentage,omitempty"`
	// Duration is never set from list endpoints; TMDB list payloads do not
	// carry runtime. Present so detail-derived rows can share the shape.
	Duration   string   `json:"duration,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	IsInMyList bool     `json:"isInMyList"`
}

// Genre is a detail-context genre pair. The id is stringified like every
// other canonical id.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited performer on a detail record.
type CastMember struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CharacterName string  `json:"characterName,omitempty"`
	ImageURL      *string `json:"imageUrl"`
}

// DetailedContent is the canonical detail-context record.
type DetailedContent struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Type            DetailType   `json:"type"`
	ReleaseDate     string       `json:"releaseDate,omitempty"`
	ReleaseYear     string       `json:"releaseYear,omitempty"`
	DurationMinutes int          `json:"durationMinutes,omitempty"`
	AgeRating       string       `json:"ageRating,omitempty"`
	ThumbnailURL    *string      `json:"thumbnailUrl"`
	HeroImageURL    *string      `json:"heroImageUrl"`
	PreviewVideoURL *string      `json:"previewVideoUrl"`
	VoteAverage     float64      `json:"voteAverage,omitempty"`
	MatchPercentage int          `json:"matchPercentage,omitempty"`
	Genres          []Genre      `json:"genres,omitempty"`
	CastMembers     []CastMember `json:"castMembers,omitempty"`
	SeasonsCount    int          `json:"seasonsCount,omitempty"`
	// IsInMyList is merged in by the orchestrator; it is never part of the
	// upstream payload.
	IsInMyList bool `json:"isInMyList"`
}

// ListResponse is the reshaped trending/list payload returned by the catalog
// endpoints.
type ListResponse struct {
	Results      []ContentItem `json:"results"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
	TotalResults int           `json:"totalResults"`
}
