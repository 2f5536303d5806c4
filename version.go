// Package heron holds build metadata for the heron CLI.
package heron

// Version is the current heron release.
const Version = "0.1.0"
