// Package ui contains helpers for printing devrun's terminal output.
package ui

import "strings"

// Banner returns the ASCII-art banner with the devrun logo.
func Banner() string {
	banner := strings.Join([]string{
		`     _                           `,
		`  __| | _____   ___ __ _   _ ___  `,
		` / _' |/ _ \ \ / / '__| | | | '_ \ `,
		`| (_| |  __/\ V /| |  | |_| | | | |`,
		` \__,_|\___| \_/ |_|   \__,_|_| |_|`,
	}, "\n")

	return banner
}
