// Package accountsdk provides the wire types for the accounts service API
// and a small HTTP client for consuming it from other Go services.
//
// The server handlers use the same types to build responses, so the SDK and
// the service can never drift apart on the wire format.
package accountsdk
