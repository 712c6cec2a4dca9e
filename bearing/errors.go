package bearing

import "errors"

// Sentinel errors for bearing geometry derivation. All represent
// geometrically infeasible configurations, fatal to the evaluation of
// one BearingSpec but never to the surrounding process. Match with
// errors.Is; builders wrap them with the offending dimension named.
var (
	// ErrNonPositiveDimension indicates one of the five inputs is zero or negative.
	ErrNonPositiveDimension = errors.New("bearing: dimension must be positive")
	// ErrInvalidOrdering indicates the outer diameter is not larger than the inner diameter.
	ErrInvalidOrdering = errors.New("bearing: outer diameter must exceed inner diameter")
	// ErrWidthExceedsChannel indicates the width is too large for the race
	// to contain the diagonal roller channel: width must be < (OD−ID)/2.
	ErrWidthExceedsChannel = errors.New("bearing: width must be less than the radial channel depth (OD-ID)/2")
	// ErrInsufficientWallThickness indicates a race wall at mid-width would
	// fall below its configured minimum.
	ErrInsufficientWallThickness = errors.New("bearing: race wall thickness below configured minimum")
	// ErrRollerTooSmall indicates the fit and slide clearances leave a
	// non-positive roller diameter or length.
	ErrRollerTooSmall = errors.New("bearing: clearances leave a non-positive roller")
	// ErrRollerChamfer indicates the roller's contact-face chamfer would be
	// shorter than the configured printable minimum.
	ErrRollerChamfer = errors.New("bearing: roller chamfer below configured minimum length")
	// ErrBadConfig indicates a non-positive configuration constant.
	ErrBadConfig = errors.New("bearing: configuration constants must be positive")
)
