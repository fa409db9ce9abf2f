//go:build js && wasm

package contact

import "net/http"

// setOpaqueMode asks the wasm fetch transport for a no-cors request. The
// header is consumed by the transport and never sent.
func setOpaqueMode(req *http.Request) {
	req.Header.Set("js.fetch:mode", "no-cors")
}
