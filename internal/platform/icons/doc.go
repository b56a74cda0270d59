// Package icons maps the card's stable icon identifiers to Lucide symbols.
//
// Templates reference icons by id and the page layout embeds the sprite once,
// so markup stays small and the icon set can change without touching views.
package icons
