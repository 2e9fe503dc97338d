package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// The reports module fills two of its selects from backend lookups. The
// endpoints answer with either a bare JSON array of strings or an object
// wrapping the array under a named key; both shapes are accepted.

// Lookup fetches the option list behind a lookup path such as
// "reports/customer-divisions".
func (c *Client) Lookup(ctx context.Context, path string) ([]string, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "GET", "/api/"+path, nil, &raw); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", path, err)
	}
	return parseLookupResponse(raw)
}

// CustomerDivisions fetches the division options for the reports form.
func (c *Client) CustomerDivisions(ctx context.Context) ([]string, error) {
	return c.Lookup(ctx, "reports/customer-divisions")
}

// CustomerCompanies fetches the company options for the reports form.
func (c *Client) CustomerCompanies(ctx context.Context) ([]string, error) {
	return c.Lookup(ctx, "reports/customer-companies")
}

func parseLookupResponse(raw json.RawMessage) ([]string, error) {
	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	var wrapped map[string][]string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		for _, key := range []string{"divisions", "companies"} {
			if vals, ok := wrapped[key]; ok {
				return vals, nil
			}
		}
		// Unknown wrapper key: take the first array present.
		for _, vals := range wrapped {
			return vals, nil
		}
		return nil, fmt.Errorf("lookup: wrapper object has no array")
	}
	return nil, fmt.Errorf("lookup: unrecognized response shape")
}
