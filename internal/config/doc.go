// The config package encapsulates the display policy shared by the whydiff
// commands: how much shared context to keep around a difference, how to mark
// where it was cut, whether to escape whitespace and how many context lines
// unified diffs carry.
//
// Configuration lives in a file called 'config' inside a base directory.
// Each non-empty line not starting with '#' holds a key and a value
// separated by white space. A missing file means all defaults.
package config
