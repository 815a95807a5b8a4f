package tmdb

import (
	"reflect"
	"testing"

	"reelstream/models"
)

func warmGenres() *genreCache {
	g := newGenreCache()
	g.populate(models.MediaTypeMovie, []genre{
		{ID: 28, Name: "Action"},
		{ID: 12, Name: "Adventure"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 53, Name: "Thriller"},
	})
	g.populate(models.MediaTypeTV, []genre{
		{ID: 18, Name: "Drama"},
		{ID: 10765, Name: "Sci-Fi & Fantasy"},
	})
	return g
}

func TestNormalizeListItemDropsUnresolvableType(t *testing.T) {
	g := newGenreCache()
	entries := []listItem{
		{ID: 1, MediaType: "person", Name: "Some Actor"},
		{ID: 2, MediaType: "", Title: "No Discriminator"},
		{ID: 3, MediaType: "weird", Title: "Unknown Kind"},
	}
	for _, entry := range entries {
		if item := normalizeListItem(&entry, "", g); item != nil {
			t.Fatalf("expected entry %d to be dropped, got %+v", entry.ID, item)
		}
	}

	// A caller-supplied type rescues entries without a discriminator.
	entry := listItem{ID: 2, Title: "No Discriminator"}
	item := normalizeListItem(&entry, models.MediaTypeMovie, g)
	if item == nil {
		t.Fatal("expected item with caller-supplied type")
	}
	if item.Type != models.MediaTypeMovie {
		t.Fatalf("expected movie type, got %q", item.Type)
	}
}

func TestNormalizeListItemFiltersConflictingType(t *testing.T) {
	g := newGenreCache()
	entry := listItem{ID: 5, MediaType: "movie", Title: "A Movie"}
	if item := normalizeListItem(&entry, models.MediaTypeTV, g); item != nil {
		t.Fatalf("expected movie entry dropped from tv-scoped request, got %+v", item)
	}
}

func TestNormalizeListItemFields(t *testing.T) {
	g := warmGenres()
	entry := listItem{
		ID:           603,
		MediaType:    "movie",
		Title:        "The Matrix",
		Overview:     "A hacker discovers reality is simulated.",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		ReleaseDate:  "1999-03-31",
		VoteAverage:  8.22,
		GenreIDs:     []int64{28, 999, 878, 53, 12},
	}

	item := normalizeListItem(&entry, "", g)
	if item == nil {
		t.Fatal("expected item")
	}
	if item.ID != "603" {
		t.Fatalf("expected stringified id, got %q", item.ID)
	}
	if item.Type != models.MediaTypeMovie {
		t.Fatalf("expected movie type, got %q", item.Type)
	}
	if item.ReleaseYear != "1999" {
		t.Fatalf("expected releaseYear 1999, got %q", item.ReleaseYear)
	}
	if item.MatchPercentage != 82 {
		t.Fatalf("expected matchPercentage 82, got %d", item.MatchPercentage)
	}
	if item.ImageURL == nil || *item.ImageURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Fatalf("unexpected poster url: %v", item.ImageURL)
	}
	if item.BackdropURL == nil || *item.BackdropURL != "https://image.tmdb.org/t/p/w780/backdrop.jpg" {
		t.Fatalf("unexpected backdrop url: %v", item.BackdropURL)
	}
	if item.Duration != "" {
		t.Fatalf("duration must stay unset for list entries, got %q", item.Duration)
	}
	// Unresolved id 999 dropped, order preserved, capped at 3.
	want := []string{"Action", "Science Fiction", "Thriller"}
	if !reflect.DeepEqual(item.Genres, want) {
		t.Fatalf("expected genres %v, got %v", want, item.Genres)
	}
}

func TestNormalizeListItemTVFallbacks(t *testing.T) {
	g := warmGenres()
	entry := listItem{
		ID:           1399,
		MediaType:    "tv",
		Name:         "Game of Thrones",
		FirstAirDate: "2011-04-17",
	}
	item := normalizeListItem(&entry, "", g)
	if item == nil {
		t.Fatal("expected item")
	}
	if item.Title != "Game of Thrones" {
		t.Fatalf("expected name fallback for title, got %q", item.Title)
	}
	if item.ReleaseDate != "2011-04-17" {
		t.Fatalf("expected first_air_date as release date, got %q", item.ReleaseDate)
	}
	if item.MatchPercentage != 0 {
		t.Fatalf("expected matchPercentage unset without voteAverage, got %d", item.MatchPercentage)
	}

	// Neither title field present: placeholder literal.
	entry = listItem{ID: 7, MediaType: "tv"}
	item = normalizeListItem(&entry, "", g)
	if item == nil || item.Title != "Untitled" {
		t.Fatalf("expected placeholder title, got %+v", item)
	}
}

func TestNormalizeListItemIdempotentGenres(t *testing.T) {
	g := warmGenres()
	entry := listItem{ID: 1, MediaType: "movie", Title: "X", GenreIDs: []int64{878, 28}}
	first := normalizeListItem(&entry, "", g)
	second := normalizeListItem(&entry, "", g)
	if !reflect.DeepEqual(first.Genres, second.Genres) {
		t.Fatalf("genre resolution not idempotent: %v vs %v", first.Genres, second.Genres)
	}
	if len(first.Genres) > 3 {
		t.Fatalf("genre list exceeds 3: %v", first.Genres)
	}
	if first.Genres[0] != "Science Fiction" || first.Genres[1] != "Action" {
		t.Fatalf("upstream order not preserved: %v", first.Genres)
	}
}

func TestNormalizeDetailsMovie(t *testing.T) {
	data := &detailsResponse{
		ID:           603,
		Title:        "The Matrix",
		Overview:     "A hacker discovers reality is simulated.",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		ReleaseDate:  "1999-03-31",
		Runtime:      125,
		VoteAverage:  8.22,
		Genres:       []genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	}
	data.Videos.Results = []video{
		{Key: "a", Site: "YouTube", Type: "Clip"},
		{Key: "b", Site: "YouTube", Type: "Trailer"},
	}
	data.ReleaseDates.Results = []releaseDatesResult{
		{ISO3166: "DE", Releases: []releaseDate{{Certification: "16", Type: 3}}},
		{ISO3166: "US", Releases: []releaseDate{
			{Certification: "", Type: 2},
			{Certification: "PG-13", Type: 3},
		}},
	}
	for i := 0; i < 12; i++ {
		data.Credits.Cast = append(data.Credits.Cast, castMember{
			ID: int64(100 + i), Name: "Actor", Character: "Role", ProfilePath: "/face.jpg",
		})
	}

	out := normalizeDetails(data, models.MediaTypeMovie)
	if out.Type != models.DetailTypeMovie {
		t.Fatalf("expected MOVIE type, got %q", out.Type)
	}
	if out.DurationMinutes != 125 {
		t.Fatalf("expected durationMinutes 125, got %d", out.DurationMinutes)
	}
	if out.AgeRating != "PG-13" {
		t.Fatalf("expected ageRating PG-13, got %q", out.AgeRating)
	}
	if out.PreviewVideoURL == nil || *out.PreviewVideoURL != "https://www.youtube.com/watch?v=b" {
		t.Fatalf("expected trailer b, got %v", out.PreviewVideoURL)
	}
	if out.HeroImageURL == nil || *out.HeroImageURL != "https://image.tmdb.org/t/p/original/backdrop.jpg" {
		t.Fatalf("unexpected hero image: %v", out.HeroImageURL)
	}
	if out.ThumbnailURL == nil || *out.ThumbnailURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Fatalf("unexpected thumbnail: %v", out.ThumbnailURL)
	}
	if len(out.CastMembers) != 10 {
		t.Fatalf("expected cast truncated to 10, got %d", len(out.CastMembers))
	}
	if out.CastMembers[0].ImageURL == nil || *out.CastMembers[0].ImageURL != "https://image.tmdb.org/t/p/w185/face.jpg" {
		t.Fatalf("unexpected cast image: %v", out.CastMembers[0].ImageURL)
	}
	if len(out.Genres) != 2 || out.Genres[0].ID != "28" || out.Genres[0].Name != "Action" {
		t.Fatalf("unexpected genres: %+v", out.Genres)
	}
	if out.SeasonsCount != 0 {
		t.Fatalf("seasonsCount must stay unset for movies, got %d", out.SeasonsCount)
	}
}

func TestNormalizeDetailsTV(t *testing.T) {
	data := &detailsResponse{
		ID:              1399,
		Name:            "Game of Thrones",
		FirstAirDate:    "2011-04-17",
		EpisodeRunTime:  []int{42, 45},
		NumberOfSeasons: 8,
	}
	data.ContentRatings.Results = []contentRating{
		{ISO3166: "GB", Rating: "15"},
		{ISO3166: "US", Rating: "TV-MA"},
	}

	out := normalizeDetails(data, models.MediaTypeTV)
	if out.Type != models.DetailTypeShow {
		t.Fatalf("expected SHOW type, got %q", out.Type)
	}
	if out.DurationMinutes != 42 {
		t.Fatalf("expected first episode runtime 42, got %d", out.DurationMinutes)
	}
	if out.AgeRating != "TV-MA" {
		t.Fatalf("expected TV-MA, got %q", out.AgeRating)
	}
	if out.SeasonsCount != 8 {
		t.Fatalf("expected 8 seasons, got %d", out.SeasonsCount)
	}
	if out.ReleaseDate != "2011-04-17" {
		t.Fatalf("unexpected release date %q", out.ReleaseDate)
	}
	if out.ReleaseYear != "2011" {
		t.Fatalf("unexpected release year %q", out.ReleaseYear)
	}
}

func TestMovieAgeRatingFallsBackToFirstUSEntry(t *testing.T) {
	results := []releaseDatesResult{
		{ISO3166: "US", Releases: []releaseDate{
			{Certification: "R", Type: 2},
			{Certification: "", Type: 5},
		}},
	}
	// No accepted-type entry with a certification; fall back to the first.
	if got := movieAgeRating(results); got != "R" {
		t.Fatalf("expected fallback R, got %q", got)
	}
	if got := movieAgeRating(nil); got != "" {
		t.Fatalf("expected empty rating without US group, got %q", got)
	}
}

func TestTrailerURLFallsBackToAnyYouTubeVideo(t *testing.T) {
	videos := []video{
		{Key: "v1", Site: "Vimeo", Type: "Trailer"},
		{Key: "c1", Site: "YouTube", Type: "Clip"},
	}
	u := trailerURL(videos)
	if u == nil || *u != "https://www.youtube.com/watch?v=c1" {
		t.Fatalf("expected YouTube clip fallback, got %v", u)
	}
	if trailerURL([]video{{Key: "v1", Site: "Vimeo", Type: "Trailer"}}) != nil {
		t.Fatal("expected nil without any YouTube video")
	}
}

func TestReleaseYear(t *testing.T) {
	tests := map[string]string{
		"2024-05-01": "2024",
		"1999":       "1999",
		"199":        "",
		"":           "",
		"soon":       "",
	}
	for input, expect := range tests {
		if got := releaseYear(input); got != expect {
			t.Fatalf("releaseYear(%q) = %q, want %q", input, got, expect)
		}
	}
}
