package config

import "os"

// Development reports whether the DEVELOPMENT env variable asks for
// development mode. Anything but "0" counts.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
