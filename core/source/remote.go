package source

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"country-explorer/core/country"
)

const (
	remoteSource = "remote"

	// maxPayloadBytes bounds the response body read into memory.
	maxPayloadBytes = 32 << 20
)

// RemoteLoader fetches countries from a restcountries-style JSON endpoint.
type RemoteLoader struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewRemoteLoader creates a loader for url. A nil client gets a transport with
// the timeout applied to dialing, the TLS handshake and response headers.
func NewRemoteLoader(url string, timeout time.Duration, client *http.Client) *RemoteLoader {
	if url == "" {
		url = DefaultRemoteURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if client == nil {
		client = newHTTPClient(timeout)
	}
	return &RemoteLoader{url: url, timeout: timeout, client: client}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Transport: transport}
}

// Name returns the source name.
func (l *RemoteLoader) Name() string {
	return remoteSource
}

// URL returns the endpoint the loader fetches.
func (l *RemoteLoader) URL() string {
	return l.url
}

// Load performs a single GET bounded by the configured timeout and maps every
// array item through the validator.
func (l *RemoteLoader) Load(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &country.Error{
			Kind:    country.KindNetwork,
			Network: country.NetworkHTTP,
			Message: "invalid API request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, classifyFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &country.Error{
			Kind:    country.KindNetwork,
			Network: country.NetworkHTTP,
			Message: fmt.Sprintf("HTTP error querying the API: unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, classifyFetchError(err)
	}

	return DecodeRemote(body)
}

// DecodeRemote maps a restcountries JSON payload onto records.
func DecodeRemote(body []byte) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, &country.Error{Kind: country.KindPayloadShape, Message: "API response is not valid JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &country.Error{Kind: country.KindPayloadShape, Message: "API response is not valid JSON"}
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, &country.Error{
			Kind:    country.KindPayloadShape,
			Message: fmt.Sprintf("expected a list, got %s", jsonType(payload)),
		}
	}

	res := newResult(remoteSource, MaxReportedRejections)
	for i, item := range items {
		idx := i + 1
		obj, ok := item.(map[string]any)
		if !ok {
			res.reject(idx, fmt.Sprintf("item is not an object (%s)", jsonType(item)))
			continue
		}

		raw, reason := mapRemoteItem(obj)
		if reason != "" {
			res.reject(idx, reason)
			continue
		}

		rec, err := country.Validate(raw, idx)
		if err != nil {
			res.rejectErr(idx, err)
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// mapRemoteItem extracts the four canonical fields from one item. A non-empty
// reason means the item cannot be used.
func mapRemoteItem(item map[string]any) (country.Raw, string) {
	name := remoteName(item["name"])
	if name == "" {
		return nil, "missing 'name' with enough information"
	}

	continent := text(item["region"])
	if continent == "" {
		if list, ok := item["continents"].([]any); ok && len(list) > 0 {
			continent = text(list[0])
		}
	}
	if continent == "" {
		return nil, "missing 'region'/'continents'"
	}

	population := item["population"]
	if population == nil {
		population = 0
	}
	area := item["area"]
	if area == nil {
		area = 0
	}

	return country.Raw{
		country.FieldName:       name,
		country.FieldPopulation: population,
		country.FieldArea:       area,
		country.FieldContinent:  continent,
	}, ""
}

// remoteName resolves common name, then official name, then the first native
// name variant. Variants are scanned in language-code order.
func remoteName(v any) string {
	switch n := v.(type) {
	case string:
		return strings.TrimSpace(n)
	case map[string]any:
		if s := firstText(n["common"], n["official"]); s != "" {
			return s
		}
		native, ok := n["nativeName"].(map[string]any)
		if !ok {
			return ""
		}
		langs := make([]string, 0, len(native))
		for lang := range native {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			variant, ok := native[lang].(map[string]any)
			if !ok {
				continue
			}
			if s := firstText(variant["common"], variant["official"]); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstText(values ...any) string {
	for _, v := range values {
		if s := text(v); s != "" {
			return s
		}
	}
	return ""
}

func text(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// classifyFetchError maps transport failures onto display-ready network errors.
func classifyFetchError(err error) *country.Error {
	e := &country.Error{Kind: country.KindNetwork, Err: err}
	switch {
	case isTLSError(err):
		e.Network = country.NetworkTLS
		e.Message = "TLS failure accessing the API (certificates)"
	case isTimeout(err):
		e.Network = country.NetworkTimeout
		e.Message = "timeout querying the API (network/proxy)"
	case isConnectionError(err):
		e.Network = country.NetworkConnection
		e.Message = "no connection to the API (proxy/firewall/network)"
	default:
		e.Network = country.NetworkHTTP
		e.Message = "HTTP error querying the API"
	}
	return e
}

func isTLSError(err error) bool {
	var (
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
		recordErr    tls.RecordHeaderError
		alertErr     tls.AlertError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	return errors.As(err, &opErr) || errors.As(err, &dnsErr)
}
