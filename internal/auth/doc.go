// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package auth provides account authentication for TaskVault.
//
// # Components
//
//   - Argon2idHasher - one-way password hashing with random salts
//   - JWTCodec - stateless HS256 bearer-token issuance and verification
//   - AccountService - registration, login, and token authorization,
//     composed from an AccountRepository, a PasswordHasher, and a TokenCodec
//
// The package never stores or logs plaintext passwords; the single
// verification call inside Login is the only place a plaintext touches a
// stored hash. Tokens are self-contained and carry no server-side state,
// so issued tokens remain valid until expiry regardless of later account
// changes.
package auth
