// Package repositories contains the data-access collaborators of the
// bookstore: one repository per aggregate, each a thin struct over an
// injected *gorm.DB.
//
// Every write path translates store errors through pkg/dberr, so callers see
// the three error kinds of the data layer (schema, constraint, not-found)
// instead of driver-specific failures. Constraint violations are always
// propagated — a duplicate email or duplicate cart row is reported, never
// coerced into an update.
package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shashiranjanraj/bookmart/pkg/dberr"
)

// validationError folds a validate.Struct result into a single constraint
// violation, with messages in stable field order.
func validationError(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, errs[f]))
	}
	return fmt.Errorf("%w: %s", dberr.ErrConstraint, strings.Join(msgs, "; "))
}
