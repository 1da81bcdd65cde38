//go:build !windows && !darwin

package predef

// defaultCompilers are tried in order when neither clang nor $CXX decides.
var defaultCompilers = []string{"g++", "clang++", "c++"}
