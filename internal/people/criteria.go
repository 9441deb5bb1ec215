package people

import (
	"net/url"
	"slices"
	"strconv"
)

// Query parameter names read from the page URL.
const (
	ParamSex       = "sex"
	ParamCenturies = "centuries"
	ParamQuery     = "query"
	ParamSort      = "sort"
	ParamOrder     = "order"
)

// Sort fields understood by Filter.
const (
	SortName = "name"
	SortSex  = "sex"
	SortBorn = "born"
	SortDied = "died"
)

// OrderDesc is the only order value that changes anything; any other value
// keeps the ascending order.
const OrderDesc = "desc"

// SortFields lists the sortable columns in table order.
var SortFields = []string{SortName, SortSex, SortBorn, SortDied}

// Criteria controls which people are displayed and in what order.
// Empty strings mean "not set".
type Criteria struct {
	Sex       string   `json:"sex"`
	Centuries []string `json:"centuries"`
	Query     string   `json:"query"`
	Sort      string   `json:"sort"`
	Order     string   `json:"order"`
}

// CriteriaFromQuery reads the filter criteria from URL query values.
func CriteriaFromQuery(q url.Values) Criteria {
	centuries := q[ParamCenturies]
	if centuries == nil {
		centuries = []string{}
	}
	return Criteria{
		Sex:       q.Get(ParamSex),
		Centuries: slices.Clone(centuries),
		Query:     q.Get(ParamQuery),
		Sort:      q.Get(ParamSort),
		Order:     q.Get(ParamOrder),
	}
}

// Values encodes c back into query values. Unset fields are omitted.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Sex != "" {
		v.Set(ParamSex, c.Sex)
	}
	for _, century := range c.Centuries {
		v.Add(ParamCenturies, century)
	}
	if c.Query != "" {
		v.Set(ParamQuery, c.Query)
	}
	if c.Sort != "" {
		v.Set(ParamSort, c.Sort)
	}
	if c.Order != "" {
		v.Set(ParamOrder, c.Order)
	}
	return v
}

// Encode returns the query string for c, prefixed with "?" when non-empty.
func (c Criteria) Encode() string {
	enc := c.Values().Encode()
	if enc == "" {
		return ""
	}
	return "?" + enc
}

// IsDesc reports whether the descending order is selected.
func (c Criteria) IsDesc() bool {
	return c.Order == OrderDesc
}

// HasCentury reports whether century is among the selected centuries.
func (c Criteria) HasCentury(century string) bool {
	return slices.Contains(c.Centuries, century)
}

// WithSex returns c with the sex filter replaced. An empty sex clears it.
func (c Criteria) WithSex(sex string) Criteria {
	c.Centuries = slices.Clone(c.Centuries)
	c.Sex = sex
	return c
}

// WithQuery returns c with the free-text query replaced.
func (c Criteria) WithQuery(query string) Criteria {
	c.Centuries = slices.Clone(c.Centuries)
	c.Query = query
	return c
}

// ToggleCentury adds century to the selection, or removes it when present.
func (c Criteria) ToggleCentury(century string) Criteria {
	if c.HasCentury(century) {
		c.Centuries = slices.DeleteFunc(slices.Clone(c.Centuries), func(s string) bool {
			return s == century
		})
		return c
	}
	c.Centuries = append(slices.Clone(c.Centuries), century)
	return c
}

// WithoutCenturies returns c with every century toggle cleared.
func (c Criteria) WithoutCenturies() Criteria {
	c.Centuries = nil
	return c
}

// NextSort cycles a column header: another column sorts ascending, the
// same ascending column switches to descending, and a descending column
// clears the sort.
func (c Criteria) NextSort(field string) Criteria {
	c.Centuries = slices.Clone(c.Centuries)
	switch {
	case c.Sort != field:
		c.Sort, c.Order = field, ""
	case !c.IsDesc():
		c.Order = OrderDesc
	default:
		c.Sort, c.Order = "", ""
	}
	return c
}

// Reset keeps only the sort settings and drops every filter.
func (c Criteria) Reset() Criteria {
	return Criteria{Sort: c.Sort, Order: c.Order}
}

// centuryKey formats a century the way it appears in the URL.
func centuryKey(century int) string {
	return strconv.Itoa(century)
}
