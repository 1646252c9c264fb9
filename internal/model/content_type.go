package model

import "strings"

// ContentType identifies a social-media content format. Every content type
// owns an independent template state on the canvas.
type ContentType string

const (
	// ContentReel is a vertical Instagram Reel (9:16)
	ContentReel ContentType = "reel"

	// ContentStory is a vertical Instagram Story (9:16)
	ContentStory ContentType = "story"

	// ContentPost is a square Instagram Post (1:1)
	ContentPost ContentType = "post"

	// ContentTeaser is a short vertical teaser video (9:16)
	ContentTeaser ContentType = "teaser"

	// ContentTutorial is a landscape YouTube tutorial (16:9)
	ContentTutorial ContentType = "tutorial"
)

// ContentDimensions describes the target output format of a content type.
type ContentDimensions struct {
	Width       int
	Height      int
	Name        string
	HasTimeline bool
}

var contentDimensions = map[ContentType]ContentDimensions{
	ContentReel:     {Width: 1080, Height: 1920, Name: "Instagram Reel (9:16)", HasTimeline: true},
	ContentStory:    {Width: 1080, Height: 1920, Name: "Instagram Story (9:16)", HasTimeline: true},
	ContentPost:     {Width: 1080, Height: 1080, Name: "Instagram Post (1:1)", HasTimeline: false},
	ContentTeaser:   {Width: 1080, Height: 1920, Name: "Teaser Video (9:16)", HasTimeline: true},
	ContentTutorial: {Width: 1920, Height: 1080, Name: "YouTube Tutorial (16:9)", HasTimeline: true},
}

// String returns the string representation of the content type.
func (ct ContentType) String() string {
	return string(ct)
}

// Dimensions returns the target output dimensions for the content type.
// Unknown content types fall back to the reel format.
func (ct ContentType) Dimensions() ContentDimensions {
	if dims, ok := contentDimensions[ct]; ok {
		return dims
	}
	return contentDimensions[ContentReel]
}

// AspectRatio returns the width/height ratio of the content type's canvas.
func (ct ContentType) AspectRatio() float32 {
	dims := ct.Dimensions()
	return float32(dims.Width) / float32(dims.Height)
}

// IsPortrait reports whether the content type is taller than wide.
func (ct ContentType) IsPortrait() bool {
	return ct.AspectRatio() < 1.0
}

// IsLandscape reports whether the content type is wider than tall.
func (ct ContentType) IsLandscape() bool {
	return ct.AspectRatio() > 1.0
}

// IsSquare reports whether the content type has a 1:1 canvas.
func (ct ContentType) IsSquare() bool {
	ratio := ct.AspectRatio()
	return ratio > 0.99 && ratio < 1.01
}

// ParseContentType normalizes a string into a known content type,
// defaulting to reel for unknown values.
func ParseContentType(s string) ContentType {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentDimensions[ct]; ok {
		return ct
	}
	return ContentReel
}

// AllContentTypes returns the supported content types in display order.
func AllContentTypes() []ContentType {
	return []ContentType{ContentReel, ContentStory, ContentPost, ContentTeaser, ContentTutorial}
}
