// Package platform describes the path conventions of the supported operating systems
// and resolves the well-known per-user directories (home, application data, temporary files).
// A Platform value is resolved once and passed explicitly to the path helpers,
// so the same algorithms can be exercised for any target OS from any host.
package platform
