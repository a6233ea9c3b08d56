// Package datapainter holds module-level metadata shared by the CLI and
// build tooling.
package datapainter

// Version is the released version of the datapainter tool.
const Version = "0.1.0"
