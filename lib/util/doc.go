// Package util provides small hashing helpers shared by the domain packages.
package util
