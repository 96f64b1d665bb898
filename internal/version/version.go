package version

import "github.com/fatih/color"

// Version information for the mira CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Short returns the plain version string, suitable for banners and logs.
func Short() string {
	return Version
}

// Styled returns the version with each dotted component colorized for
// terminal output; versions that are not major.minor.rest pass through.
func Styled() string {
	major, minor, rest := splitSemver(Version)
	if rest == "" {
		return Version
	}
	return versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor) + "." + versionPatchColor.Sprint(rest)
}

func splitSemver(v string) (major, minor, rest string) {
	first := -1
	for i := 0; i < len(v); i++ {
		if v[i] == '.' {
			if first < 0 {
				first = i
				continue
			}
			return v[:first], v[first+1 : i], v[i+1:]
		}
	}
	return "", "", ""
}
