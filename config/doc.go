// Package config layers stablematch settings: defaults, an optional config
// file, STABLEMATCH_* environment variables and bound command-line flags,
// in increasing precedence. It also builds the zerolog logger.
package config
