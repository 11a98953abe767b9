// Package epswriter streams a parsed document back out: the prolog
// verbatim, each retained block as GS/prefix/reconstructed-content/GR, and
// finally the trailer verbatim.
package epswriter
