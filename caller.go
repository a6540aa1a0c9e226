package translate

import (
	"fmt"
	"runtime"
	"strings"
)

// callerScope returns the short name identifying the stack frame depth levels
// above the caller of callerScope itself.
func callerScope(depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("translate: negative caller depth %d", depth)
	}

	pc := make([]uintptr, 1)
	// Skip runtime.Callers, callerScope and the requesting frame.
	n := runtime.Callers(depth+2, pc)
	if n == 0 {
		return "", fmt.Errorf("translate: no stack frame at caller depth %d", depth)
	}

	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "", fmt.Errorf("translate: no stack frame at caller depth %d", depth)
	}

	return shortCallerName(frame.Function), nil
}

// shortCallerName reduces a fully qualified function name, e.g.
// "github.com/acme/app/gui.(*MainWindow).init", to the unqualified name of
// its receiver type, or the bare function name when there is no receiver.
func shortCallerName(function string) string {
	name := function
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		// Drop the package qualifier.
		parts = parts[1:]
	}
	// Closures show up as trailing "funcN" segments on their parent.
	for len(parts) > 1 && isClosureSegment(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}

	segment := parts[0]
	if len(parts) > 1 {
		// A method: the first segment is the receiver type.
		segment = strings.TrimSuffix(strings.TrimPrefix(segment, "(*"), ")")
	}
	return segment
}

func isClosureSegment(s string) bool {
	const prefix = "func"
	if len(s) <= len(prefix) || !strings.HasPrefix(s, prefix) {
		return false
	}
	for _, r := range s[len(prefix):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
