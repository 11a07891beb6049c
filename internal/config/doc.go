// Package config loads, validates and updates the YAML configuration of the command-line tool.
package config
