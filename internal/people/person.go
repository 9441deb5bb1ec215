// Package people holds the person record, the parent join and the
// filter/sort rules applied to the people table.
package people

// Sex values as served by the people endpoint.
const (
	SexMale   = "m"
	SexFemale = "f"
)

// Person is a single record from the people endpoint. Mother and Father are
// filled in by WithParents and are nil when no record carries the parent's name.
type Person struct {
	Name       string `json:"name"`
	Sex        string `json:"sex"`
	Born       int    `json:"born"`
	Died       int    `json:"died"`
	FatherName string `json:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty"`
	Slug       string `json:"slug"`

	Mother *Person `json:"mother,omitempty"`
	Father *Person `json:"father,omitempty"`
}

// IsFemale reports whether the person is listed as female.
func (p Person) IsFemale() bool {
	return p.Sex == SexFemale
}

// Century returns the century the person was born in (1601..1700 is 17).
func (p Person) Century() int {
	return Century(p.Born)
}

// Century returns the century a year belongs to.
func Century(year int) int {
	if year <= 0 {
		return 0
	}
	return (year + 99) / 100
}

// WithParents returns a copy of list where every person has Mother and Father
// resolved by exact name. The whole list is scanned for each parent and the
// first record in list order wins when names repeat.
func WithParents(list []Person) []Person {
	result := make([]Person, len(list))
	for i, person := range list {
		person.Mother = findByName(list, person.MotherName)
		person.Father = findByName(list, person.FatherName)
		result[i] = person
	}
	return result
}

// findByName returns a copy of the first person named name, or nil.
// An empty name means the parent is unknown.
func findByName(list []Person, name string) *Person {
	if name == "" {
		return nil
	}
	for i := range list {
		if list[i].Name == name {
			found := list[i]
			found.Mother, found.Father = nil, nil
			return &found
		}
	}
	return nil
}
