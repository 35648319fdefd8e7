package domain

import "context"

// StructureResolver looks up the canonical line-notation structure (SMILES) of a substance.
type StructureResolver interface {
	// ResolveStructure returns the structure string for name.
	// Failures are reported as *LookupErr.
	ResolveStructure(ctx context.Context, name string) (string, error)
}

// StructureVectorizer turns a structure string into a fixed-width numeric vector using a
// transform fitted at training time.
type StructureVectorizer interface {
	// Width returns the length of every vector produced by Transform.
	Width() int
	// Transform vectorizes structure. The same input always yields the same output.
	Transform(structure string) ([]float64, error)
}
