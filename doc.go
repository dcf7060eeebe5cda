/*
Package spor attaches out-of-band metadata ("anchors") to regions of text
files and keeps those anchors aligned with their regions as the underlying
files change.

An anchor records a copy of the anchored text (the "topic") along with a
surrounding context window. When the source file is edited, spor relocates
the topic by running a local sequence alignment between the stored context
and the current file contents and rewriting the anchor's coordinates from
the resulting alignment.

The alignment engine lives in the align subpackage, the anchor data model in
anchor, and the relocation operation in updater. Repository storage and the
command-line front end are collaborators built on top of those three
packages; see internal/repository and cmd/spor.
*/
package spor
