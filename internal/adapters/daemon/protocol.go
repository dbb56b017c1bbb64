package daemon

import "golang.org/x/exp/jsonrpc2"

// JSON-RPC method names served by the daemon.
const (
	MethodPing       = "pinto/ping"
	MethodFormat     = "pinto/format"
	MethodClearCache = "pinto/clearCache"
	MethodStatus     = "pinto/status"
	MethodShutdown   = "pinto/shutdown"
)

// Daemon-specific error codes (reserved range -32000 to -32099).
const (
	CodeFormatFailed    int64 = -32000
	CodeFormatTimeout   int64 = -32001
	CodeInstallDeclined int64 = -32002
	CodeInstallFailed   int64 = -32003
)

// FormatFailedError reports a formatting failure to the client.
func FormatFailedError(msg string) error {
	return jsonrpc2.NewError(CodeFormatFailed, msg)
}

// FormatTimeoutError reports that pint exceeded its time budget.
func FormatTimeoutError(msg string) error {
	return jsonrpc2.NewError(CodeFormatTimeout, msg)
}

// InstallDeclinedError reports that the user refused the pint installation.
func InstallDeclinedError(msg string) error {
	return jsonrpc2.NewError(CodeInstallDeclined, msg)
}

// InstallFailedError reports that composer could not install pint.
func InstallFailedError(msg string) error {
	return jsonrpc2.NewError(CodeInstallFailed, msg)
}

// PingResult is the response to pinto/ping.
type PingResult struct {
	IdleRemainingSeconds int64 `json:"idleRemainingSeconds"`
}

// FormatParams is the request payload for pinto/format.
type FormatParams struct {
	Path string `json:"path"`
}

// FormatResult is the response to pinto/format.
type FormatResult struct {
	Content string `json:"content"`
	Changed bool   `json:"changed"`
	Root    string `json:"root"`
}

// ClearCacheResult is the response to pinto/clearCache.
type ClearCacheResult struct {
	Dropped int `json:"dropped"`
}

// StatusResult is the response to pinto/status. The trigger gates are
// reported so editor clients can wire their own on-save/on-type hooks
// without re-reading pinto.yaml.
type StatusResult struct {
	Running              bool   `json:"running"`
	PID                  int    `json:"pid"`
	Boundary             string `json:"boundary"`
	UptimeSeconds        int64  `json:"uptimeSeconds"`
	LastActivityUnix     int64  `json:"lastActivityUnix"`
	IdleRemainingSeconds int64  `json:"idleRemainingSeconds"`
	CachedRoots          int    `json:"cachedRoots"`
	FormatOnSave         bool   `json:"formatOnSave"`
	FormatOnType         bool   `json:"formatOnType"`
	FormatOnPaste        bool   `json:"formatOnPaste"`
}

// ShutdownResult is the response to pinto/shutdown.
type ShutdownResult struct {
	Success bool `json:"success"`
}
