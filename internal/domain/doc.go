// Package domain contains the core business entities, validation rules, and
// domain errors of the application. It represents the heart of the system,
// independent of any specific storage or delivery mechanism.
package domain
