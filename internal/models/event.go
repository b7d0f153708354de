package models

import (
	"strings"
	"unicode"
)

// EventTypeOthers is the ad-hoc event type that requires an explicit
// description and point value at open time
const EventTypeOthers = "OTHERS"

// NormalizeEventName uppercases an event name and strips all whitespace,
// so "cw 1" and "CW1" resolve to the same key
func NormalizeEventName(name string) string {
	return stripSpace(strings.ToUpper(name))
}

// NormalizeIGN canonicalizes an in-game name for lookups: case-insensitive
// and whitespace-insensitive exact matching
func NormalizeIGN(ign string) string {
	return stripSpace(strings.ToUpper(ign))
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
