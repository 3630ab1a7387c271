package transform

// DebugChecks exposes whether the lvgeomdebug pair check is compiled in.
const DebugChecks = debugChecks
