//go:build windows

package predef

// defaultCompilers are tried in order when neither clang nor $CXX decides.
// MSVC first, then MinGW and LLVM.
var defaultCompilers = []string{"cl", "clang-cl", "g++", "clang++"}
