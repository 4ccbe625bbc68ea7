// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing for the credential store.

# Hashing

Passwords are hashed with bcrypt before they reach storage:

	hash, err := auth.HashPassword(req.Password)

bcrypt is salted and deliberately slow; the same password hashed twice yields
different strings, and the plaintext is never stored or logged.

# Verification

	if auth.VerifyPassword(user.PasswordHash, req.Password) { ... }

Comparison runs inside bcrypt's constant-time primitive. Callers map a false
result to the same generic unauthorized response as an unknown username, so
error text never reveals which usernames exist.
*/
package auth
