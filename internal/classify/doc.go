// Package classify maps file extensions to category folder names.
//
// A Mapping starts from the built-in table, may be extended by config entries
// and override files, and is read-only once a run begins. Lookups are
// case-insensitive and unmapped extensions land in the Others folder.
package classify
