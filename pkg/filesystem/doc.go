// Package filesystem provides filesystem implementations for xml2conf.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem, whose writes go through renameio so a destination file is
// replaced atomically, and an afero-backed filesystem for tests.
package filesystem
