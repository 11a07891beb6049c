// Package ids validates and generates RFC 4122 UUIDs and their Windows GUID spelling.
package ids
