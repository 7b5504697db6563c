// Package quoteapi implements the client for the Stock Empire price endpoint.
//
// The endpoint is a plain GET with symbol and market query parameters; the
// canonical success body is {"price": n}. Bodies proxied straight from the
// upstream quote service arrive wrapped in a quoteResponse envelope instead,
// and simulated quotes stringify the number, so parsing is deliberately loose.
package quoteapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/stockempire/tracker"
)

// DefaultBaseURL is the public price endpoint.
const DefaultBaseURL = "https://stock-empire.app/api/stock-price"

// Client fetches latest prices. It implements tracker.QuoteProvider.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a client for the endpoint at baseURL.
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: new(http.Client)}
}

// Latest issues one request for the symbol's current price. No retries, no
// backoff; every failure mode is an error and the caller keeps the previous
// price.
func (c *Client) Latest(ctx context.Context, symbol string, market tracker.Market) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s?symbol=%s&market=%s", c.baseURL, url.QueryEscape(symbol), market)

	var jobj any
	if err := c.jwget(ctx, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	price, err := pickPrice(jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot read price for %q: %w", symbol, err)
	}
	if !price.IsPositive() {
		// An empty bid sometimes comes back as 0; that is not a quote.
		return decimal.Zero, fmt.Errorf("no tradable price for %q: got %s", symbol, price)
	}
	return price, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the
// provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}

// price paths, in order of preference: the canonical shape first, then the
// upstream envelope the original endpoint proxied.
var pricePaths = []string{
	"$.price",
	"$.regularMarketPrice",
	"$.quoteResponse.result[0].regularMarketPrice",
}

// pickPrice extracts the price from a quote payload of any supported shape.
func pickPrice(jobj any) (decimal.Decimal, error) {
	for _, path := range pricePaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer; keep the first one if any.
		if jlist, ok := jval.([]any); ok {
			if len(jlist) == 0 {
				continue
			}
			jval = jlist[0]
		}
		return toDecimal(jval)
	}
	return decimal.Zero, fmt.Errorf("payload has no price field")
}

// toDecimal accepts the float and string spellings the endpoint produces.
func toDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// sometimes the value comes as a localized string
		v = strings.ReplaceAll(v, ",", ".")
		v = strings.ReplaceAll(v, " ", "")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return decimal.Zero, fmt.Errorf("price is an invalid string %q: %w", v, err)
		}
		return decimal.NewFromFloat(f), nil
	default:
		return decimal.Zero, fmt.Errorf("price is neither a number nor a string: %v", jval)
	}
}
