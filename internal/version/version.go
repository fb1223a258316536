// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Observer horizon layer, headless frame mode, moon phase names
// 0.1.0 - Initial release: zodiac sky map, planet and special-point layers
