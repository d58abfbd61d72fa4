package platform

// Package platform contains OS and filesystem integration: recursive image
// discovery, atomic file writes, and revealing files in the system file manager.
