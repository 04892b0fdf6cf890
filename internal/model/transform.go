package model

// TransformFunc computes a derived input from the current year's outputs.
// It must be pure: same reader contents, same result.
type TransformFunc func(outputs Reader, year, yearIndex int) (any, error)

// Transform is a derived-input adapter: a function over the current year's
// already-computed outputs plus the explicit list of output names it reads.
// Consumers of a transform gain graph edges to the producers of DependsOn,
// never to the transform itself.
//
// An empty DependsOn is legal and deliberate: such a transform creates no
// edges and may read whatever has been computed so far this year. That is
// the documented cycle-breaker pattern; the engine's read tracking flags
// undeclared reads as warnings, never errors.
type Transform struct {
	Fn        TransformFunc
	DependsOn []string
}

// TransformOf wraps a bare function as a Transform with no declared
// dependencies, the shorthand variant of the declaration.
func TransformOf(fn TransformFunc) Transform {
	return Transform{Fn: fn}
}
