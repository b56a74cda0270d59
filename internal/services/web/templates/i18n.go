package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer translates catalog keys for the layout, the profile card, the
// edit overlay, and error states. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key with loc. Without a localizer, string keys format as
// themselves so components still render in tests and fallbacks.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return keyString
	}
	return fmt.Sprintf(keyString, args...)
}
