package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// sanctiSchema constrains the sancti table document. The identifier
// regular expression enforces the full grammar up front so that a typo
// in the table fails the load instead of shifting a feast.
const sanctiSchema = `
#ID: string & =~"^sancti:(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])_[a-z0-9_]+:[1-4]$"

#Catalog: {
	version: int & >=1900 & <=2100
	days: [...#ID] & [_, ...]
}
`

// validateSancti checks a parsed sancti document against the CUE
// schema. Returns a descriptive error naming the offending entry.
func validateSancti(doc sanctiDoc) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(sanctiSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile sancti schema: %w", err)
	}

	catalog := schema.LookupPath(cue.ParsePath("#Catalog"))
	if err := catalog.Err(); err != nil {
		return fmt.Errorf("lookup sancti schema: %w", err)
	}

	val := ctx.Encode(map[string]any{
		"version": doc.Version,
		"days":    doc.Days,
	})
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode sancti table: %w", err)
	}

	unified := catalog.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("sancti table rejected by schema: %s", cueerrors.Details(err, nil))
	}
	return nil
}
