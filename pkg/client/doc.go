// Package client is the version-independent part of the typed Bitcoin Core client.
//
// Each supported daemon major version has its own package, v17 through v30. A version's
// Client embeds the previous version's Client, so methods whose shape did not change are
// inherited and methods whose result drifted are redeclared. A method introduced in a later
// version does not exist on older clients, which turns a version mismatch into a compile error.
//
// Every versioned client wraps a Base, which owns the JSON-RPC connection, argument validation
// and the server version check.
package client
