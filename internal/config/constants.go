package config

import "time"

// Application settings.
const (
	AppName    = "countdown"
	DBFileName = "countdown.db"
)

// Timer cadence. The display must be refreshed at least once per second
// so the countdown stays current with no user input.
const TickInterval = time.Second

// Input constraints.
const (
	// FieldCharLimit caps each of the hour/minute/second entry fields.
	FieldCharLimit = 2

	// FieldWidth is the rendered width of an entry field.
	FieldWidth = 4
)

// Layout references. The original desktop window was 227x121 points;
// the terminal layout scales its spacing against the equivalent cell
// size.
const (
	ReferenceWidth  = 28
	ReferenceHeight = 9
)
