// Package derive builds new streams out of existing ones.
//
// Every operator follows the same recipe: create a private sink, register a
// transforming listener on the upstream stream, and expose only the sink's
// read handle. The subscription that keeps the transformation flowing is
// stashed in the derived stream's extension payload, so it lives exactly as
// long as the derived stream does.
//
//	doubled := derive.Map(numbers, func(v *int) int { return *v * 2 })
//	evens := derive.Filter(numbers, func(v *int) bool { return *v%2 == 0 })
//	all := derive.Merge(doubled, evens)
package derive
