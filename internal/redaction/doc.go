// Package redaction decides and applies the vaulting of an email's
// description.
//
// [Decide] is a pure function of the Target delta and the pre-operation
// image: it reports whether the secure flag flipped, which vault record
// operations are needed and what the description must become. [Executor]
// runs those operations against a user-scoped [VaultStore] and writes the
// outcome back into the typed Target view.
package redaction
