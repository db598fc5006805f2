// Package console is the interactive text menu over the merged record set.
//
// It loads both sources on start, then loops over a numbered menu: search,
// filters, sort, statistics, full listing, export of the last listing and
// refresh. Prompts that need a number or a yes/no answer are repeated at most
// MaxAttempts times before the option is abandoned.
package console
