// Package auditlog appends organize outcomes to the CSV audit log and the
// optional tab-separated human log.
//
// Both logs are append-only. Every append holds an exclusive file lock on a
// sibling ".lock" file so the header check and the rows of one run land
// together even when two processes share a log.
package auditlog
