// Package config reads runtime settings via viper: candidate PDF
// passwords and the CSV output directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Passwords returns the candidate PDF passwords from configuration.
// Encrypted statements are tried against each in order.
func Passwords() []string {
	return viper.GetStringSlice("pdf.passwords")
}

// OutputDir returns the directory CSVs are written to, with ~ and
// environment variables expanded. Defaults to the working directory.
func OutputDir() string {
	dir := viper.GetString("output.dir")
	if dir == "" {
		return "."
	}
	return ExpandPath(dir)
}

// ExpandPath resolves a leading ~ to the home directory and expands
// $VAR environment references. The path is returned unchanged when the
// home directory cannot be determined.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
