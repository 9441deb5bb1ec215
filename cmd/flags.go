package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/people-page/internal/people"
)

// mustGetString gets a string flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetInt gets an int flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetStringSlice gets a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// addCriteriaFlags registers the filter flags shared by list and export.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("sex", "", "Filter by sex (m or f)")
	cmd.Flags().StringSlice("century", nil, "Filter by birth century, repeatable (e.g. --century 17 --century 18)")
	cmd.Flags().String("query", "", "Case-insensitive search in names and parent names")
	cmd.Flags().String("sort", "", "Sort by name, sex, born or died")
	cmd.Flags().Bool("desc", false, "Reverse the sort order")
}

// criteriaFromFlags builds filter criteria from the shared flags.
func criteriaFromFlags(cmd *cobra.Command) (people.Criteria, error) {
	c := people.Criteria{
		Sex:       mustGetString(cmd, "sex"),
		Centuries: mustGetStringSlice(cmd, "century"),
		Query:     mustGetString(cmd, "query"),
		Sort:      mustGetString(cmd, "sort"),
	}
	if c.Sex != "" && c.Sex != people.SexMale && c.Sex != people.SexFemale {
		return c, fmt.Errorf("invalid --sex %q: use m or f", c.Sex)
	}
	if c.Sort != "" && !people.IsSortField(c.Sort) {
		return c, fmt.Errorf("invalid --sort %q: use one of %v", c.Sort, people.SortFields)
	}
	if mustGetBool(cmd, "desc") {
		if c.Sort == "" {
			return c, fmt.Errorf("--desc requires --sort")
		}
		c.Order = people.OrderDesc
	}
	return c, nil
}
