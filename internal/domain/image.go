package domain

// Image is the set of URL candidates the catalog provides for one picture, one per size tier.
type Image struct {
	IconURL        *string `json:"icon_url,omitempty"`
	MediumURL      *string `json:"medium_url,omitempty"`
	ScreenURL      *string `json:"screen_url,omitempty"`
	ScreenLargeURL *string `json:"screen_large_url,omitempty"`
	SmallURL       *string `json:"small_url,omitempty"`
	SuperURL       *string `json:"super_url,omitempty"`
	ThumbURL       *string `json:"thumb_url,omitempty"`
	TinyURL        *string `json:"tiny_url,omitempty"`
	OriginalURL    *string `json:"original_url,omitempty"`
}

// UniformImage fills every tier with the same URL. An empty url yields an empty Image.
func UniformImage(url string) Image {
	if url == "" {
		return Image{}
	}
	p := func() *string { s := url; return &s }
	return Image{
		IconURL:        p(),
		MediumURL:      p(),
		ScreenURL:      p(),
		ScreenLargeURL: p(),
		SmallURL:       p(),
		SuperURL:       p(),
		ThumbURL:       p(),
		TinyURL:        p(),
		OriginalURL:    p(),
	}
}

// Best returns the highest quality URL available, or "" when there is none.
func (img Image) Best() string {
	return firstURL(img.OriginalURL, img.SuperURL, img.ScreenLargeURL, img.ScreenURL,
		img.MediumURL, img.SmallURL, img.ThumbURL)
}

func (img Image) Medium() string {
	if u := firstURL(img.MediumURL, img.ScreenURL, img.SmallURL); u != "" {
		return u
	}
	return img.Best()
}

func (img Image) Thumbnail() string {
	if u := firstURL(img.ThumbURL); u != "" {
		return u
	}
	return img.Medium()
}

func firstURL(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}
