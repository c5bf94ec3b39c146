// Package pantryv1 declares the pantry.v1 gRPC services, their messages and
// a JSON codec. Messages are plain structs, so every call must use the "json"
// content subtype; the typed clients in this package set it automatically.
package pantryv1
