package predef

// ClassifyStdlib returns the standard library named by the first marker
// macro that is defined, checked as libstdc++, libc++, then MSVC.
func ClassifyStdlib(m Macros) StdlibKind {
	switch {
	case m.Defined("__GLIBCXX__"):
		return StdlibGNU
	case m.Defined("_LIBCPP_VERSION"):
		return StdlibLLVM
	case m.Defined("_MSC_VER"):
		return StdlibMSVC
	}
	return StdlibUnknown
}

// ClassifyPlatform picks the vendor family first (Windows, Linux, Apple) and,
// for Apple, the device class from the TargetConditionals.h values.
func ClassifyPlatform(m Macros) PlatformKind {
	switch {
	case m.Defined("_WIN32"):
		return PlatformWindows
	case m.Defined("__linux__"):
		return PlatformLinux
	case m.Defined("__APPLE__"):
		return classifyApple(m)
	}
	return PlatformUnknown
}

// TARGET_OS_MAC is also 1 on iOS, so the mobile checks go first.
func classifyApple(m Macros) PlatformKind {
	switch {
	case m.True("TARGET_IPHONE_SIMULATOR"):
		return PlatformIOSSimulator
	case m.True("TARGET_OS_IPHONE"):
		return PlatformIOS
	case m.True("TARGET_OS_MAC"):
		return PlatformMacOS
	}
	return PlatformUnknown
}
