// Package arc generates SVG path data for annular wedges.
//
// A wedge is the region between two concentric circles and two angles.
// SVG's elliptical arc command becomes ambiguous when its end points
// coincide and needs a large-arc flag beyond π, so [Wedge] first cuts the
// angular span with [Split] into pieces of at most π. Every arc segment then
// uses a large-arc flag of 0, and a full circle is drawn as two half arcs.
//
// Angles follow the mathematical convention (counter-clockwise from the
// positive x axis). [At] maps them to screen coordinates, where y grows
// downward.
package arc
