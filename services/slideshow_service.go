package services

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
)

// fallbackSlides is used when slideshow.json is missing or unreadable.
var fallbackSlides = []string{"Images/Cycle/Old.jpg"}

// Slideshow supplies the storefront's background rotation from an optional
// static JSON file (a plain array of image URLs).
type Slideshow struct {
	path string
}

func NewSlideshow(path string) *Slideshow { return &Slideshow{path: path} }

// Slides returns the configured list, or the hard-coded fallback on any
// read or parse failure. Never returns an empty list.
func (s *Slideshow) Slides() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("slideshow file unavailable, using fallback")
		return append([]string(nil), fallbackSlides...)
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil || len(urls) == 0 {
		log.Warn().Err(err).Str("file", s.path).Msg("slideshow file malformed, using fallback")
		return append([]string(nil), fallbackSlides...)
	}
	return urls
}
