//go:build !iossimulator

package predef

const iosSimulatorBuild = false
