package cnf

import (
	"fmt"

	"knowledgebase/internal/ast"
)

// nameGenerator hands out fresh reserved-namespace symbol names for one
// Convert or ConvertBatch call. It is per-call state (not a package-level counter) so
// that running the pipeline concurrently, or twice in a row in a test,
// never produces names that collide with a previous run's.
type nameGenerator struct {
	variables int
	constants int
	functions int
}

func (g *nameGenerator) variable() string {
	g.variables++
	return fmt.Sprintf("%sv%d", ast.ReservedPrefix, g.variables)
}

func (g *nameGenerator) constant() string {
	g.constants++
	return fmt.Sprintf("%sC%d", ast.ReservedPrefix, g.constants)
}

func (g *nameGenerator) function() string {
	g.functions++
	return fmt.Sprintf("%sH%d", ast.ReservedPrefix, g.functions)
}
