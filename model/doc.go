// Package model defines the shared data types for the pagelift pipeline:
// pixel-space geometry, recognized words as produced by the OCR engine,
// and the output document model consumed by the serialization backends.
//
// All geometry is in pixel units with the origin at the top-left corner of
// the page image, matching the coordinate system OCR engines report in.
package model
