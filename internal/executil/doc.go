// Package executil runs external commands on the host.
//
// Commands run with inherited stdio by default so the user sees the tool's
// own output, matching how the harness shells out to docker and uname. A
// non-zero exit is returned as an error that preserves the subprocess exit
// code; [ExitCode] recovers it so main can terminate with the same status.
package executil
