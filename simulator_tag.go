//go:build iossimulator

package predef

// iosSimulatorBuild is set by the iossimulator build tag, which gomobile
// passes when building for the iOS simulator.
const iosSimulatorBuild = true
