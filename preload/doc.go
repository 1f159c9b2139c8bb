// Package preload reads country records from JSON and builds the immutable
// countrygraph.Graph the rest of the module queries.
//
// Input format
//
//	The root value must be an array. Every object element contributes one record:
//
//	  [{"cca3": "CZE", "borders": ["AUT", "DEU", "POL", "SVK"]}, ...]
//
//	Only "cca3" (string) and "borders" (array of strings) are read. Any other field
//	is skipped whatever its shape, as are non-object array elements, non-string
//	border entries and blank codes. Codes are normalized by the graph builder.
//
// The reader streams tokens through encoding/json's Decoder, so a dataset with
// large unrelated fields (names, translations, geometry) is never materialized.
//
// Entry points
//
//   - Load reads from any io.Reader.
//   - LoadFile opens a path.
//   - LoadDefault uses the embedded world dataset (ISO 3166-1 alpha-3 codes).
//
// Errors
//
//   - ErrLoad      every failure; the message names the source.
//   - ErrNotArray  the root value is not a JSON array (also matches ErrLoad).
package preload
