package peopleapi

import (
	"context"

	"github.com/kozaktomas/people-page/internal/people"
)

// GetPeople retrieves the full list of people.
func (c *Client) GetPeople(ctx context.Context) ([]people.Person, error) {
	result, err := doGetJSON[[]people.Person](ctx, c, c.path)
	if err != nil {
		return nil, err
	}
	if *result == nil {
		return []people.Person{}, nil
	}
	return *result, nil
}
