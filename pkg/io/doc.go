// Package io provides TOML import and export for magnet configurations.
//
// # Overview
//
// A magnet diagram is fully described by a [magnet.Config]. This package
// stores configs as small, hand-editable TOML files so a layout can be kept
// next to the drawings it produces and rendered again later.
//
// # TOML Format
//
//	inner_radius = 0.173
//	outer_radius = 0.396
//	axis_limit = 0.414
//	total_span_degrees = 60.0
//	sector_fractions = [20.0, 20.0, 20.0, 20.0, 20.0]
//	arrow_angles = [12.0, 36.0, 60.0, 84.0, 108.0]
//
//	[presentation]
//	scale = 1000.0
//	x_label = "x [mm]"
//
//	[[annotations]]
//	text = "inner Ø 346, outer Ø 792"
//	x = 20.7
//	y = 372.6
//
// Radii and the axis limit are in metres, angles in degrees, fractions in
// percent. Annotation positions are in output units.
//
// # Segments
//
// Instead of sector_fractions a file may give segments = n, which splits the
// span into n equal sectors. Giving both is allowed only when they agree.
//
// # Validation
//
// [ReadTOML] rejects unknown keys and validates the decoded config, so a
// config that loads is ready for the layout engine. Failures are ConfigErrors
// (see the errors package).
package io
