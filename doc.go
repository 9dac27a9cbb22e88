// Package ljson is a small, self-contained JSON library: a recursive-descent
// parser, a textual serializer, an in-memory value tree, and a structural
// mutation API over that tree.
//
// The parser and serializer each keep their own growable scratch buffer as
// their temporary workspace, so both allocate close to the final size of
// their output in one shot rather than growing a result slice element by
// element.
package ljson
