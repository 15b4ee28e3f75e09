// Parses flags and configures logging for the swebench harness.
//
// The harness accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level before the
// selected subcommand runs. A .env file in the working directory is loaded
// first so flag env fallbacks (SWEBENCH_*) can come from it.
package cli
