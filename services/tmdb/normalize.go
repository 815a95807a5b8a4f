package tmdb

import (
	"fmt"
	"math"

	"reelstream/models"
)

// placeholderTitle is used when upstream provides neither title field.
const placeholderTitle = "Untitled"

// maxListGenres caps the genre names carried on a list-context record.
const maxListGenres = 3

// maxCastMembers caps the cast list on a detail-context record.
const maxCastMembers = 10

// certification release types accepted for the movie age rating
// (1 = premiere, 3 = theatrical, 4 = digital).
var acceptedCertTypes = map[int]bool{1: true, 3: true, 4: true}

// normalizeListItem converts one raw trending/discover entry into a
// canonical ContentItem. knownType, when non-empty, supplies the type for
// entries without their own media_type discriminator (requests already
// scoped to one media type) and filters out entries whose discriminator
// names the other kind. Entries that resolve to neither movie nor tv —
// people, unknown kinds — are dropped: the return is nil, never a guessed
// type.
func normalizeListItem(item *listItem, knownType models.MediaType, genres *genreCache) *models.ContentItem {
	mediaType := models.MediaType(item.MediaType)
	if knownType != "" {
		if mediaType.Valid() && mediaType != knownType {
			return nil
		}
		mediaType = knownType
	}
	if !mediaType.Valid() {
		return nil
	}

	title := item.Title
	if title == "" {
		title = item.Name
	}
	if title == "" {
		title = placeholderTitle
	}

	releaseDate := item.ReleaseDate
	if releaseDate == "" {
		releaseDate = item.FirstAirDate
	}

	out := &models.ContentItem{
		ID:          fmt.Sprintf("%d", item.ID),
		Title:       title,
		ImageURL:    imageURL(item.PosterPath, imageSizePoster),
		BackdropURL: imageURL(item.BackdropPath, imageSizeBackdrop),
		Description: item.Overview,
		ReleaseDate: releaseDate,
		ReleaseYear: releaseYear(releaseDate),
		Type:        mediaType,
		VoteAverage: item.VoteAverage,
	}
	if item.VoteAverage > 0 {
		out.MatchPercentage = int(math.Round(item.VoteAverage * 10))
	}

	for _, id := range item.GenreIDs {
		if len(out.Genres) == maxListGenres {
			break
		}
		if name, ok := genres.name(mediaType, id); ok {
			out.Genres = append(out.Genres, name)
		}
	}
	return out
}

// normalizeDetails converts one raw detail payload (movie/tv union) into a
// canonical DetailedContent. mediaType is the already-resolved request kind,
// not read from the payload.
func normalizeDetails(data *detailsResponse, mediaType models.MediaType) *models.DetailedContent {
	title := data.Title
	if mediaType == models.MediaTypeTV {
		title = data.Name
	}
	if title == "" {
		title = placeholderTitle
	}

	releaseDate := data.ReleaseDate
	if mediaType == models.MediaTypeTV {
		releaseDate = data.FirstAirDate
	}

	out := &models.DetailedContent{
		ID:              fmt.Sprintf("%d", data.ID),
		Title:           title,
		Description:     data.Overview,
		Type:            models.DetailTypeFor(mediaType),
		ReleaseDate:     releaseDate,
		ReleaseYear:     releaseYear(releaseDate),
		ThumbnailURL:    imageURL(data.PosterPath, imageSizePoster),
		HeroImageURL:    imageURL(data.BackdropPath, imageSizeOriginal),
		PreviewVideoURL: trailerURL(data.Videos.Results),
		VoteAverage:     data.VoteAverage,
	}
	if data.VoteAverage > 0 {
		out.MatchPercentage = int(math.Round(data.VoteAverage * 10))
	}

	switch mediaType {
	case models.MediaTypeMovie:
		if data.Runtime > 0 {
			out.DurationMinutes = data.Runtime
		}
		out.AgeRating = movieAgeRating(data.ReleaseDates.Results)
	case models.MediaTypeTV:
		if len(data.EpisodeRunTime) > 0 {
			out.DurationMinutes = data.EpisodeRunTime[0]
		}
		out.AgeRating = tvAgeRating(data.ContentRatings.Results)
		out.SeasonsCount = data.NumberOfSeasons
	}

	for _, g := range data.Genres {
		out.Genres = append(out.Genres, models.Genre{
			ID:   fmt.Sprintf("%d", g.ID),
			Name: g.Name,
		})
	}

	cast := data.Credits.Cast
	if len(cast) > maxCastMembers {
		cast = cast[:maxCastMembers]
	}
	for _, c := range cast {
		out.CastMembers = append(out.CastMembers, models.CastMember{
			ID:            fmt.Sprintf("%d", c.ID),
			Name:          c.Name,
			CharacterName: c.Character,
			ImageURL:      imageURL(c.ProfilePath, imageSizeProfile),
		})
	}
	return out
}

// trailerURL picks the preview video: first YouTube entry of type Trailer,
// else the first YouTube entry of any type.
func trailerURL(videos []video) *string {
	var fallback *video
	for i := range videos {
		v := &videos[i]
		if v.Site != "YouTube" {
			continue
		}
		if v.Type == "Trailer" {
			return watchURL(v.Key)
		}
		if fallback == nil {
			fallback = v
		}
	}
	if fallback != nil {
		return watchURL(fallback.Key)
	}
	return nil
}

func watchURL(key string) *string {
	u := "https://www.youtube.com/watch?v=" + key
	return &u
}

// movieAgeRating extracts the US certification: the first release entry in
// the US group with an accepted release type and a non-empty certification,
// falling back to the group's first entry.
func movieAgeRating(results []releaseDatesResult) string {
	for _, group := range results {
		if group.ISO3166 != "US" {
			continue
		}
		for _, rd := range group.Releases {
			if rd.Certification != "" && acceptedCertTypes[rd.Type] {
				return rd.Certification
			}
		}
		if len(group.Releases) > 0 {
			return group.Releases[0].Certification
		}
		return ""
	}
	return ""
}

// tvAgeRating extracts the US content rating.
func tvAgeRating(results []contentRating) string {
	for _, r := range results {
		if r.ISO3166 == "US" {
			return r.Rating
		}
	}
	return ""
}

// releaseYear parses the four-digit year prefix of an ISO date string.
func releaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}
