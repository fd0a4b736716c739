// Package testutil provides canned collaborator implementations for
// tests: a scripted prompter, a capturing messenger, and a recording
// editor. Filesystem fakes live in pkg/filesystem (NewMemory) and the
// environment fake is types.MapEnviron.
package testutil
