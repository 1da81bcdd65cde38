//go:build darwin

package predef

// Xcode installs clang++, and g++ is usually a shim for it.
var defaultCompilers = []string{"clang++", "c++", "g++"}
