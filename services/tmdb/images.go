package tmdb

const imageBaseURL = "https://image.tmdb.org/t/p"

// Image size tiers used by the normalizers. TMDB accepts the token verbatim
// in the URL path, so unknown tokens pass through without validation.
const (
	imageSizePoster   = "w500"
	imageSizeBackdrop = "w780"
	imageSizeProfile  = "w185"
	imageSizeOriginal = "original"
)

// imageURL builds an absolute image URL from a relative upstream path.
// Returns nil when the path is empty, which serializes as JSON null.
func imageURL(path, size string) *string {
	if path == "" {
		return nil
	}
	u := imageBaseURL + "/" + size + path
	return &u
}
