package sunburst

import "github.com/matzehuels/sunburst/pkg/render/sunburst/arc"

// Canvas is the vector drawing sink a scene is composed onto.
//
// Calls arrive in order: Start, an optional Background, any number of
// Wedge and Label calls, then End.
type Canvas interface {
	// Start opens a width x height document.
	Start(width, height int)
	// Background fills the whole canvas.
	Background(fill string)
	// Wedge draws a closed path filled with fill and outlined with stroke.
	Wedge(id string, d arc.Path, fill, stroke string, strokeWidth float64)
	// Label draws text centered horizontally and vertically on at.
	Label(id string, at arc.Point, text string, font Font)
	// End closes the document.
	End()
}
