// Package notebook implements in-memory editing of Jupyter/Colab notebook
// documents.
//
// A notebook is parsed from its raw JSON form into a Document that keeps the
// ordered cell list editable while preserving every other field byte-for-byte,
// so that parsing and re-serializing an unedited document reproduces its
// content exactly.
//
// The package supports two mutations: inserting a new code cell at a given
// position and replacing the source of an existing code cell. Both encode the
// cell source using the nbformat convention of line fragments, where every
// fragment carries its trailing newline except the last.
package notebook
