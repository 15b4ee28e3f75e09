// Provides platform-appropriate paths for the harness.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The harness name "swebench" is used as the
// subdirectory under each base path.
package paths
