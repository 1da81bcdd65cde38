package predef

// TargetMacros returns the target macros a C compiler predefines for the given
// Go target. Android counts as Linux, since its compilers define __linux__.
// An iOS target is a simulator when simulator is set or goarch is amd64.
func TargetMacros(goos, goarch string, simulator bool) Macros {
	switch goos {
	case "windows":
		return Macros{"_WIN32": "1"}
	case "linux":
		return Macros{"__linux__": "1"}
	case "android":
		return Macros{"__linux__": "1", "__ANDROID__": "1"}
	case "darwin":
		return appleMacros(false, false)
	case "ios":
		return appleMacros(true, simulator || goarch == "amd64")
	}
	return Macros{}
}

func appleMacros(iphone, simulator bool) Macros {
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	return Macros{
		"__APPLE__":               "1",
		"TARGET_OS_MAC":           "1",
		"TARGET_OS_OSX":           flag(!iphone),
		"TARGET_OS_IPHONE":        flag(iphone),
		"TARGET_OS_SIMULATOR":     flag(simulator),
		"TARGET_IPHONE_SIMULATOR": flag(simulator),
	}
}

// PlatformFor classifies the given Go target.
func PlatformFor(goos, goarch string, simulator bool) PlatformKind {
	return ClassifyPlatform(TargetMacros(goos, goarch, simulator))
}
