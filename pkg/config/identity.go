package config

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"runtime"
	"runtime/debug"
	"strings"
)

// ModulePath is the agent's own module path. Frames declared inside it are
// trusted during default identity resolution.
const ModulePath = "github.com/pulseapm/pulseapm"

// stdlibModule is the synthetic module name for standard library and
// runtime frames.
const stdlibModule = "std"

// UnknownServiceName is the sentinel returned when no service name is
// configured and no foreign frame can be found on the call chain. It
// already satisfies the sanitizer's charset, so it passes through
// sanitization unchanged.
const UnknownServiceName = "unknown"

// PublisherToken identifies the publisher of a code module. Comparison is
// exact over all eight bytes; a zero token is never trusted.
type PublisherToken [8]byte

// TokenFor derives the publisher token for a module path.
func TokenFor(module string) PublisherToken {
	sum := sha256.Sum256([]byte(module))
	var t PublisherToken
	copy(t[:], sum[:len(t)])
	return t
}

// TokenFromBytes builds a token from a raw byte sequence. Sequences that
// are not exactly eight bytes yield no token: undersized tokens must never
// compare equal to a trusted one.
func TokenFromBytes(b []byte) (PublisherToken, bool) {
	var t PublisherToken
	if len(b) != len(t) {
		return PublisherToken{}, false
	}
	copy(t[:], b)
	return t, true
}

// IsZero reports whether the token is all zero bytes.
func (t PublisherToken) IsZero() bool {
	return t == PublisherToken{}
}

// String returns the token as lowercase hex.
func (t PublisherToken) String() string {
	return hex.EncodeToString(t[:])
}

// CallFrame is one entry of the active call chain: the declaring module
// and that module's publisher token.
type CallFrame struct {
	Module string
	Token  PublisherToken
}

// CallChainInspector supplies the active call chain, ordered from the
// resolver's own frame outward to the process entry point. The runtime
// implementation walks the goroutine stack; tests inject synthetic chains.
type CallChainInspector interface {
	CallChain() []CallFrame
}

// trustedTokens holds the publishers whose frames are skipped during
// default identity resolution: the runtime/standard library and the
// agent's own module.
var trustedTokens = map[PublisherToken]struct{}{
	TokenFor(stdlibModule): {},
	TokenFor(ModulePath):   {},
}

func trustedToken(t PublisherToken) bool {
	if t.IsZero() {
		return false
	}
	_, ok := trustedTokens[t]
	return ok
}

// defaultServiceName walks the call chain and returns the sanitized base
// name of the first module whose token is not trusted. An exhausted or
// fully trusted chain yields the sentinel.
func defaultServiceName(inspector CallChainInspector) string {
	for _, frame := range inspector.CallChain() {
		if trustedToken(frame.Token) {
			continue
		}
		if frame.Module == "" {
			continue
		}
		return SanitizeServiceName(path.Base(frame.Module))
	}
	return UnknownServiceName
}

// runtimeInspector derives the call chain from the current goroutine
// stack via runtime.Callers.
type runtimeInspector struct{}

func (runtimeInspector) CallChain() []CallFrame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var chain []CallFrame
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			module := moduleOf(frame.Function)
			chain = append(chain, CallFrame{Module: module, Token: TokenFor(module)})
		}
		if !more {
			break
		}
	}
	return chain
}

// mainModulePath is the module path of the executable, used to name frames
// from the main package, which the runtime reports as plain "main".
var mainModulePath = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return info.Main.Path
	}
	return "main"
}()

// moduleOf maps a runtime function name like
// "github.com/acme/shop/internal/web.(*Server).handle" to the owning
// module. Standard library frames collapse to the stdlib module; main
// package frames resolve through build info.
func moduleOf(function string) string {
	pkg := function
	if slash := strings.LastIndex(pkg, "/"); slash >= 0 {
		rest := pkg[slash+1:]
		if dot := strings.Index(rest, "."); dot >= 0 {
			pkg = pkg[:slash+1+dot]
		}
	} else if dot := strings.Index(pkg, "."); dot >= 0 {
		pkg = pkg[:dot]
	}

	if pkg == "main" {
		return mainModulePath
	}
	first := pkg
	if slash := strings.Index(first, "/"); slash >= 0 {
		first = first[:slash]
	}
	if !strings.Contains(first, ".") {
		return stdlibModule
	}

	// Module paths of the host/org/repo form keep their first three
	// segments; anything shorter is already the module path.
	segments := strings.Split(pkg, "/")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	return strings.Join(segments, "/")
}
