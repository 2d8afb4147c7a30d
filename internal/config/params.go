package config

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Board params travel as a query string, e.g.
// "width=9&height=9&probability=0.1&seed=42".
type gameParams struct {
	Width       int     `schema:"width"`
	Height      int     `schema:"height"`
	Probability float64 `schema:"probability"`
	Seed        *uint64 `schema:"seed,omitempty"`
}

// ParseParams decodes query over the default params; keys that are absent
// keep their defaults.
func ParseParams(query string) (mines.GameParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("malformed params %q: %w", query, err)
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := gameParams(mines.DefaultParams())
	if err := dec.Decode(&dto, values); err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid params %q: %w", query, err)
	}

	params := mines.GameParams(dto)
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

func EncodeParams(params mines.GameParams) (string, error) {
	enc := schema.NewEncoder()
	values := url.Values{}
	if err := enc.Encode(gameParams(params), values); err != nil {
		return "", err
	}
	return values.Encode(), nil
}

// ParamsAttr logs params in the query form they are configured with.
func ParamsAttr(params mines.GameParams) slog.Attr {
	query, err := EncodeParams(params)
	if err != nil {
		return slog.String("params", params.String())
	}
	return slog.String("params", query)
}
