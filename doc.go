/*
Package tapehead is an interactive tool for stateful random access to
a file-like byte stream. A stream is opened once; a session then
issues repeated seek, read, and write commands against a persistent
cursor, observing each effect in the prompt immediately.

It targets low-level poking at files, devices, and pipes, where
tracking the position by hand across repeated dd/head/tail invocations
is error-prone.

# Usage

The tapehead command is a thin wrapper around Run:

	err := tapehead.Run(ctx, "/dev/sdb")

Run opens the stream with the widest access permitted, drives the
session on the standard streams, and returns when the user quits,
input ends, or ctx is cancelled.
*/
package tapehead
