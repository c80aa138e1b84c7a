// Package client is the web client's Remote Store Client.
//
// # Overview
//
// GRPCClient talks to the studydesk store over gRPC using the storeapi
// contract. It
//  1. attaches the public API key to every call,
//  2. attaches the access token obtained by Login, and on a "token expired"
//     rejection refreshes the token pair once and replays the call,
//  3. maps gRPC status codes to the sentinel errors below while keeping the
//     store's message as the error text.
//
// Papers and Words narrow a GRPCClient to the list/insert/update/delete
// surface of one table.
//
// # Error Handling
//
// Every store failure is a *RemoteError. Match its kind with errors.Is:
// ErrUnauthorized, ErrUnavailable, ErrNotFound, ErrInvalid, ErrRemote.
// Calls are never retried.
//
// # Concurrency
//
// A GRPCClient is safe for concurrent use; the token pair is guarded and a
// refresh happens at most once per expired access token.
package client
