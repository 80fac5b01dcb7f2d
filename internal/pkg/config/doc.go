// Package config holds the settings structs used across textbook-rsa.
//
// Settings are validated with go-playground/validator before they are handed
// to the logger or the RSA processor, so invalid key sizes or log targets are
// rejected up front instead of surfacing halfway through key generation.
package config
