package analyzer

// builtins is the fixed set of names that never count as missing: host
// globals, standard library globals, and literal keywords.
var builtins = map[string]struct{}{}

func init() {
	names := []string{
		// host environment
		"console", "window", "document", "process", "global", "globalThis",
		"navigator", "location", "history", "localStorage", "sessionStorage",
		"alert", "confirm", "prompt", "fetch", "XMLHttpRequest", "URL",
		"URLSearchParams", "FormData", "Blob", "File", "FileReader", "Event",
		"CustomEvent", "AbortController", "Headers", "Request", "Response",
		"requestAnimationFrame", "cancelAnimationFrame",
		"setTimeout", "setInterval", "clearTimeout", "clearInterval",
		"queueMicrotask", "structuredClone", "atob", "btoa",
		// standard library
		"Object", "Array", "String", "Number", "Boolean", "Function", "Symbol",
		"Math", "JSON", "Date", "RegExp", "Error", "TypeError", "RangeError",
		"SyntaxError", "EvalError", "ReferenceError", "Promise", "Proxy",
		"Reflect", "Map", "Set", "WeakMap", "WeakSet", "WeakRef", "BigInt",
		"Intl", "ArrayBuffer", "SharedArrayBuffer", "DataView", "Int8Array",
		"Uint8Array", "Uint8ClampedArray", "Int16Array", "Uint16Array",
		"Int32Array", "Uint32Array", "Float32Array", "Float64Array",
		"BigInt64Array", "BigUint64Array", "TextEncoder", "TextDecoder",
		"parseInt", "parseFloat", "isNaN", "isFinite", "eval",
		"encodeURI", "decodeURI", "encodeURIComponent", "decodeURIComponent",
		// module system
		"require", "module", "exports", "__dirname", "__filename",
		// literals
		"undefined", "null", "true", "false", "NaN", "Infinity",
		"this", "super", "arguments", "new",
	}
	for _, name := range names {
		builtins[name] = struct{}{}
	}
}

// IsBuiltin reports whether the name belongs to the fixed builtin set
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}
