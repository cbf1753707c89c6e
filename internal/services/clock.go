package services

import "time"

// Clock supplies the current instant. Time-dependent services take it as a
// dependency so period resolution never reads an ambient "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// LocationFor resolves an IANA timezone name, falling back to UTC when the
// name is unknown to the timezone database.
func LocationFor(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}
