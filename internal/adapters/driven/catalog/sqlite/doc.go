// Package sqlite loads the rental catalog from a SQLite database file.
//
// The schema is applied by embedded migrations when the database is
// opened. List-valued fields (amenities, images, seasons, blocked dates,
// highlights and key strengths) are stored as JSON arrays in TEXT columns.
//
// The database is read once into a memory.Catalog; queries never touch
// the file afterwards.
package sqlite
