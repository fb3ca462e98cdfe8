package scenes

import (
	"github.com/decker502/reportdeck/pkg/game"
)

// Scene is a type alias for game.Scene so callers only import this package.
type Scene = game.Scene
