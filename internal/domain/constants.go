package domain

// Default schedule values (рабочий день барбершопа)
const (
	DefaultStartHour       = 8
	DefaultEndHour         = 20
	DefaultIntervalMinutes = 20
	DefaultBreakStart      = "12:00"
	DefaultBreakEnd        = "12:40"
)

// Business validation constants
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 240
	MaxNameLength      = 100
	MaxEmailLength     = 254
	MinUsernameLength  = 3
	MaxUsernameLength  = 50
	MinPasswordLength  = 6
	MaxPasswordLength  = 72 // ограничение bcrypt
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
