// Package drivepath splits paths into their drive (root authority) and remainder,
// and resolves the deepest directory shared by a set of paths on each drive.
//
// Drives are keyed by a normalized identifier: "" for relative paths, "/" for POSIX absolute paths,
// a lower-cased "c:" for Windows drive letters and a lower-cased `\\server\share` for UNC shares.
// Paths are treated as opaque strings: nothing here touches the file system.
package drivepath
