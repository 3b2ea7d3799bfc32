// Package config defines the application's configuration structure and the
// loader that populates it from defaults, an optional config file, and
// environment variables.
package config
