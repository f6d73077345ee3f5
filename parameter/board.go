package parameter

// Board geometry in board units; the original board was a 1200x1200 window
const (
	// BoardWidth is the horizontal extent of the board, walls sit at 0 and BoardWidth
	BoardWidth = 1200.0

	// BoardHeight is the nominal vertical extent used to place the pin field
	BoardHeight = 1200.0

	// PinRows is the number of pin rows in the triangle
	PinRows = 18

	// PinBaseCount is the pin count of the top row, each following row adds one
	PinBaseCount = 3

	// PinRadius is the collision radius of a pin
	PinRadius = 5.0

	// PinSpacingX is the horizontal distance between neighbouring pins, also the bin width
	PinSpacingX = 50.0

	// PinSpacingY is the vertical distance between rows
	PinSpacingY = 45.0

	// PinStartY is the y of the first pin row
	PinStartY = BoardHeight/4 + 20

	// DropTopY is where balls spawn and where guidance progress starts
	DropTopY = 160.0

	// ExitMargin is the distance below the last row spacing at which a ball settles
	ExitMargin = 50.0
)
