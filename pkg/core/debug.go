package core

// DebugMode controls whether diagnostic reports include stack traces and
// scope dumps. When false, reports carry minimal information.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the interaction layer.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
