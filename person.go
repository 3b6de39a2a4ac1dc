package morpheus

import "sort"

// GenericPerson is the result key for non-personal forms (participles),
// declared with an empty person label in the grammar.
const GenericPerson = "form"

// personOrder is the conventional display order for person labels.
var personOrder = []string{"1sg", "2sg", "3sg", "1pl", "2pl", "3pl", GenericPerson}

// PersonRank returns the display rank of a person label. Unrecognized
// labels rank after all conventional ones.
func PersonRank(person string) int {
	for i, p := range personOrder {
		if p == person {
			return i
		}
	}
	return len(personOrder)
}

// SortPersons sorts person labels into conventional display order,
// alphabetically among unrecognized labels.
func SortPersons(persons []string) {
	sort.Slice(persons, func(i, j int) bool {
		ri, rj := PersonRank(persons[i]), PersonRank(persons[j])
		if ri != rj {
			return ri < rj
		}
		return persons[i] < persons[j]
	})
}
