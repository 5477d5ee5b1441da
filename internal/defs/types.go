// internal/defs/types.go
package defs

import "image/color"

// MaxTier is the strongest enemy tier index.
const MaxTier = 6

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Symbol rune       `json:"symbol"` // символ для терминального фронтенда
}
