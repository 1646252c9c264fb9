package geometry

import "github.com/reeltune/reeltune/internal/model"

// Element names shared across content types.
const (
	ElementBackground = "background"
	ElementPiP        = "pip"
	ElementTitle      = "title"
	ElementSubtitle   = "subtitle"
)

// Default PiP aspect ratio when no plugin descriptor has been loaded,
// matching the common 700×400 plugin window.
const DefaultPluginAspectRatio float32 = 1.75

// defaultElements builds the built-in element set for a content type, laid
// out proportionally inside frame: background filling the frame, the media
// window in the upper-left quarter, title near the top, subtitle near the
// bottom. Order defines z-order, last entry topmost.
func defaultElements(ct model.ContentType, frame model.Rect) []*model.Element {
	background := &model.Element{
		Name:        ElementBackground,
		Type:        model.ElementBackground,
		Rect:        frame,
		Visible:     true,
		Enabled:     true,
		Constrained: true,
		Color:       "#1e1e1e",
	}

	pipSize := frame.W / 4
	if frame.H/4 < pipSize {
		pipSize = frame.H / 4
	}
	pip := &model.Element{
		Name:              ElementPiP,
		Type:              model.ElementPiP,
		Rect:              model.NewRect(frame.X+frame.W*0.05, frame.Y+frame.H*0.05, pipSize, pipSize),
		Visible:           true,
		Enabled:           true,
		Shape:             model.ShapeRectangle,
		CornerRadius:      8,
		PluginAspectRatio: DefaultPluginAspectRatio,
	}

	title := &model.Element{
		Name:     ElementTitle,
		Type:     model.ElementText,
		Rect:     model.NewRect(frame.X+frame.W*0.10, frame.Y+frame.H*0.08, frame.W*0.80, frame.H*0.10),
		Visible:  true,
		Enabled:  true,
		Content:  titleText(ct),
		FontSize: titleFontSize(ct),
		Color:    "#ffffff",
		Style:    model.StyleBold,
	}

	subtitle := &model.Element{
		Name:     ElementSubtitle,
		Type:     model.ElementText,
		Rect:     model.NewRect(frame.X+frame.W*0.10, frame.Y+frame.H*0.80, frame.W*0.80, frame.H*0.08),
		Visible:  true,
		Enabled:  true,
		Content:  "Subtitle",
		FontSize: 18,
		Color:    "#c8c8c8",
		Style:    model.StyleNormal,
	}

	return []*model.Element{background, pip, title, subtitle}
}

func titleText(ct model.ContentType) string {
	switch ct {
	case model.ContentReel:
		return "Reel Title"
	case model.ContentStory:
		return "Story Title"
	case model.ContentPost:
		return "Post Title"
	case model.ContentTeaser:
		return "Teaser Title"
	case model.ContentTutorial:
		return "Tutorial Title"
	default:
		return "Title"
	}
}

func titleFontSize(ct model.ContentType) int {
	// Landscape formats leave less vertical room for the headline.
	if ct.IsLandscape() {
		return 28
	}
	return 32
}
