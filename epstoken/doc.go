// Package epstoken classifies a single post-prolog EPS line into one of the
// token kinds the engine recognizes (see the External Interfaces token
// table). Classification is pure and stateless: it never looks at
// surrounding lines, and any line matching none of the recognized patterns
// classifies as [Other], the opaque-passthrough catch-all.
package epstoken
