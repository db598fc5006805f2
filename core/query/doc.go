// Package query answers search, filter, sort and statistics requests over a
// list of country records.
//
// Every function is pure: the input slice is never modified and a new slice is
// returned. Field and sort key names accept the canonical English names and the
// Spanish aliases used by the Spanish-language CSV files, in any case.
//
// Params and Apply bundle the operations in the order front ends use them:
// name search, continent filter, population range, area range, sort.
package query
