// Package sqlite serves a blog index straight from a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Sources are addressed as
//
//	sqlite:///path/to/blog.db?table=posts
//
// The table needs title, url and content columns; other columns are ignored.
// Rows are read in rowid order, which is the corpus order searches report.
//
// The database is opened read-only and closed again once the rows are read.
package sqlite
