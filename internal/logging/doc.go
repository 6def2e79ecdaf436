// Package logging provides the console logger used by the CLI.
package logging
