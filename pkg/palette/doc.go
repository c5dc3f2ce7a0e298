// Package palette defines the fixed set of colors a user can pick from.
//
// A [Color] is a closed enumeration. Each value maps, through a lookup table,
// to a display name and a renderable hex value. The set and its order never
// change at runtime:
//
//	red, blue, yellow, black, purple, pink
//
// Use [All] to iterate the swatches in display order and [Parse] to turn user
// input (flags, config files) into a Color.
package palette
