// Package cli formats the data loaded by the screen controllers for the
// non-interactive commands: rounded tables for people, JSON or YAML for
// scripts.
package cli
