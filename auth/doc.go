/*
Package auth provides password hashing for operator authentication.

# Password Hashes

Passwords are stored as unsalted SHA-256 hex digests:

	hash := auth.HashPassword("admin123")
	ok := auth.VerifyPassword("admin123", hash)

This is intentionally demo-grade: the accounts are seeded fixtures, and
the scheme has to stay stable so seeded rows keep authenticating across
restarts. Do not reuse this package for real credential storage.

# Seeded Accounts

SeedPassword derives the bootstrap password from an operator email
(local part + "123"), which is how the generator provisions the four
per-municipality admin accounts.
*/
package auth
