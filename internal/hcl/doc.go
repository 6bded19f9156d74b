// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, the evaluation
// context available to device files and the translation of decoded blocks
// into grid descriptions.
package hcl
