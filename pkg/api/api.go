// Package api defines the Connect RPC surface of the splitkaro backend.
//
// Messages are plain Go structs carried as JSON through Connect's Codec
// extension point; there is no IDL or generated code. The handler and client
// constructors follow the connectrpc generated-code conventions (a path
// prefix plus an http.Handler, and a per-service client interface) so the
// service layer and tests read the same as they would against protoc output.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// WithJSONCodec returns the Connect option that installs this package's JSON
// codec. Every handler and client constructor here applies it already; it is
// exported for callers that build raw Connect handlers or clients themselves.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

// codecNameJSON registers the codec under Connect's standard "json" name, so
// requests and responses travel as application/json.
const codecNameJSON = "json"

// jsonCodec is a Connect codec for plain structs backed by encoding/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecNameJSON }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		// Empty bodies decode to the zero message.
		return nil
	}
	return json.Unmarshal(data, message)
}
