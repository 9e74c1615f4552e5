// Package clientip resolves the client address of a request behind common
// proxies and carries it through the request context, where rate limiting
// and logging pick it up.
package clientip
