// Package ucrypt is a self-contained cryptographic toolkit built on an
// arbitrary-precision integer core. It implements the classical multi-precision
// algorithms (addition, subtraction, schoolbook and Comba multiplication,
// normalised long division, modular exponentiation, extended GCD, CRT/RNS
// conversion, radix I/O) plus a small set of higher-level primitives layered
// on top: the SHA-2 family (SHA-1, SHA-224, SHA-256, SHA-384, SHA-512),
// generic HMAC, PBKDF2 key derivation, primality testing, and textbook RSA.
//
// See the subpackages: bignum, bigrand, sha, hmac, pbkdf2, prime, rsa.
package ucrypt
