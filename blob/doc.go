// Package blob materializes clustered groups as concatenated binary blobs
// on disk and keeps a byte-exact index for extracting any item back out.
//
// What:
//
//   - Merger — writes one blob per group, named group_<id>.bin, each item
//     stored as a "FILE: <id>\n" header followed by a synthetic payload of
//     weight × BytesPerUnit bytes.
//   - Index — maps item IDs to (group, offset, size) locations. Locate
//     answers "where does this item live", Extract reads its payload back
//     and verifies the header on the way.
//
// Why:
//
//	Merging many small records into few large blobs trades per-entry
//	bookkeeping overhead for a small index, the classic small-file
//	consolidation play. The index preserves random access to every
//	original item.
//
// Layout of one record inside a blob:
//
//	FILE: <item id>\n          ← header, counted in Location.Size
//	XXXXXXXXXX...              ← payload, weight × BytesPerUnit bytes
//
// Errors:
//
//   - ErrUnknownItem: Locate/Extract called with an ID the index never saw.
//   - ErrBlobMissing: Extract found the index entry but not the blob file.
//   - ErrCorruptBlob: the on-disk header does not match the index entry.
//
// Tests shrink BytesPerUnit with WithBytesPerUnit to keep fixtures tiny;
// the default of 1 MiB matches weights expressed in megabytes.
package blob
