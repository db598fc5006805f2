// Package utils provides common utility functions for the country-explorer application.
// It includes helpers for coercing loosely typed values (CSV cells, decoded JSON)
// into the fixed types used by the rest of the code.
package utils
