// Package fetch holds the load state of remote resources for the screens.
// A Resource tracks one {status, value, err} triple per key, reloads on demand
// and reports every transition through an update callback. Each reload takes a
// generation token for its key; a completion whose token is no longer the
// latest for that key is dropped, so a slow response can never overwrite a
// newer one.
package fetch
