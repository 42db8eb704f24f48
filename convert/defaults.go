package convert

// Default style values shared by the resolvers.
const (
	defaultTextColor = "#000000"
	transparent      = "transparent"

	// holeColor simulates path holes: the target schema has no compound
	// path concept, so inner contours are painted over in white.
	holeColor = "#FFFFFF"

	defaultFontSize = 16.0

	// charPixelWidth estimates text extent: the target editor measures
	// text itself, a rough width is enough for import.
	charPixelWidth = 10.0
	textHeight     = 25.0
)
