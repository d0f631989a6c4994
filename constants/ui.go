package constants

import "time"

// FrameInterval is the render and scheduler tick (~60 FPS)
const FrameInterval = 16 * time.Millisecond

// Exit chord: Ctrl+Q repeated within the window
const (
	QuitPressCount = 3
	QuitWindow     = 2 * time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "babykeys.log"
)
