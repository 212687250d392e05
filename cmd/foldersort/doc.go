// Package main hosts the foldersort CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, builds the effective
// extension mapping, runs the organizer and reports the outcome as a summary
// table or JSON. Audit logging and classification live in internal packages;
// commands here only wire flags to them.
package main
