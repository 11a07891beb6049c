// Package constants holds values shared by the internal packages of the command-line tool.
package constants
