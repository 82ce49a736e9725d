// Package config loads the server configuration.
//
// Values come from a JSON file, environment variables and command-line
// flags. Flags beat environment variables, which beat the JSON file; the
// file path itself is read from CONFIG or -c/-config. Fields no source sets
// take the built-in defaults, and the merged result is validated before
// use. The entry point is [GetStructuredConfig].
package config
