// Package fakebackend implements an in-memory stand-in for the Health Panda
// backend.
//
// It serves the same HTTP contract as the real service (register, login,
// profile and food endpoints under /api) and is used by integration tests and
// by cmd/fakebackend for local development. Tokens are HS256 JWTs, passwords
// are bcrypt hashes and nothing is persisted.
//
// Request correlation, access logging and bearer authentication are handled
// by middleware before requests reach the handlers.
package fakebackend
