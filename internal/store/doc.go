package store

// Package store reads and writes the label document kept next to the images as
// image_labels.json. Writes are atomic: an interrupted save leaves the previous
// file intact.
