// Package service implements the application's business operations on top
// of the store interfaces: validation ordering, uniqueness checks, password
// hashing, and payment id/timestamp assignment.
package service
