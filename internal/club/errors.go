package club

import "errors"

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrDuplicatePlayer  = errors.New("a player cannot appear twice in one match")
	ErrDrawNotAllowed   = errors.New("scores cannot be equal")
	ErrNegativeScore    = errors.New("scores cannot be negative")
	ErrInvalidWinner    = errors.New("winner must be the slot with the higher score")
	ErrMissingPlayer    = errors.New("both slots need a player")
	ErrBlankName        = errors.New("player name cannot be blank")
	ErrRatingOutOfRange = errors.New("rating is outside the allowed range")
)
