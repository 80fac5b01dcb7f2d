// Package cryptoalg defines the types and contracts of the textbook RSA cryptosystem:
// key pairs, the injected random bit source, the processor interface and the
// sentinel errors callers match with errors.Is.
package cryptoalg
