// Package styles assigns wedge colors and sizes labels for sunburst charts.
//
// # Colors
//
// Every top-level branch gets one hue from the [Palette]; all of its
// descendants share that hue. Lightness starts at [Palette.BaseLightness] on
// the first ring and grows by [Palette.LightnessStep] per ring, so deeper
// rings read as paler tints of their branch. Saturation is always 1.
//
// With no configured hues, branch i of n receives hue (i+1)/n mod 1, which
// spreads branches evenly around the color wheel.
//
// Conversion from HSL goes through go-colorful and truncates each channel to
// 8 bits:
//
//	styles.HSLToRGB(0, 1, 0.25)   // rgb(127,0,0)
//	styles.HSLToRGB(1.0/3, 1, 0.5) // rgb(0,255,0)
//
// # Labels
//
// [LabelWidth] estimates text width from character count, and [FitsLabel]
// compares it with a wedge's chord. Renderers use this to drop labels that
// would spill out of narrow wedges.
package styles
