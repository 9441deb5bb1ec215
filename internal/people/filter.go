package people

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the people matching c, sorted by c.Sort and c.Order.
// The input slice is left untouched.
func Filter(list []Person, c Criteria) []Person {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(c.Query))

	result := make([]Person, 0, len(list))
	for _, person := range list {
		if c.Sex != "" && person.Sex != c.Sex {
			continue
		}
		if len(c.Centuries) > 0 && !slices.Contains(c.Centuries, centuryKey(person.Century())) {
			continue
		}
		if query != "" && !matchesQuery(fold, person, query) {
			continue
		}
		result = append(result, person)
	}

	compare := comparator(c.Sort)
	if compare == nil {
		return result
	}
	if c.IsDesc() {
		// ties keep server order in both directions
		slices.SortStableFunc(result, func(a, b Person) int { return -compare(a, b) })
		return result
	}
	slices.SortStableFunc(result, compare)
	return result
}

func matchesQuery(fold cases.Caser, p Person, query string) bool {
	for _, field := range []string{p.Name, p.MotherName, p.FatherName} {
		if field != "" && strings.Contains(fold.String(field), query) {
			return true
		}
	}
	return false
}

// comparator returns the ordering for a sort field, or nil for unknown fields.
func comparator(field string) func(a, b Person) int {
	switch field {
	case SortName:
		col := collate.New(language.English)
		return func(a, b Person) int { return col.CompareString(a.Name, b.Name) }
	case SortSex:
		col := collate.New(language.English)
		return func(a, b Person) int { return col.CompareString(a.Sex, b.Sex) }
	case SortBorn:
		return func(a, b Person) int { return cmp.Compare(a.Born, b.Born) }
	case SortDied:
		return func(a, b Person) int { return cmp.Compare(a.Died, b.Died) }
	}
	return nil
}

// IsSortField reports whether field is one of SortFields.
func IsSortField(field string) bool {
	return slices.Contains(SortFields, field)
}
