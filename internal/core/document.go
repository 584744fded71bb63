package core

// Document is the fully materialised result of parsing one FBX file. It is
// built in a single pass and is read-only afterward; once ReadFBX returns,
// a Document may be shared across goroutines without synchronization.
type Document struct {
	Version Version
	Roots   []*Node
	Footer  [16]byte
}
