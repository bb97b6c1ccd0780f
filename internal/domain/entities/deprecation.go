package entities

import "log/slog"

// DeprecationHook is invoked whenever a deprecated compatibility accessor is
// used. It is a single observability hook: shims forward to their
// replacements and never duplicate logic, so swapping or silencing the hook
// cannot change returned values. Set it once at startup; the default logs a
// warning via slog.
var DeprecationHook = func(old, replacement string) {
	slog.Warn("deprecated log entry accessor", "accessor", old, "use", replacement)
}
