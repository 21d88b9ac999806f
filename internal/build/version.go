// Package build contains the version information of the devrun binary.
package build

// Version contains the current semantic version of devrun.
const Version = "0.9.2"
