// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the batch lifecycle that loads device
// descriptions, expands them concurrently and writes the report, decoupled
// from any specific entrypoint like a CLI.
package app
