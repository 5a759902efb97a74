// Package core implements the translation pipeline for xml2conf.
//
// A translation runs four stages in order and stops at the first failure:
//
//  1. read the XML input fully into memory
//  2. parse it into an element tree (pkg/document)
//  3. validate and build the configuration mapping (pkg/builder)
//  4. render the mapping as text (pkg/formatter)
//
// Only after all four succeed is the destination written, and the write
// replaces the file atomically. A failed translation therefore never creates
// or modifies the output file.
package core
