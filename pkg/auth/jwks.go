package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var (
	// ErrKeyProviderUnavailable is returned when the key set cannot be fetched.
	ErrKeyProviderUnavailable = errors.New("key provider unavailable")
	ErrKeyNotFound            = errors.New("signing key not found")
)

type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSCache holds the RSA keys of a JSON Web Key Set, refetching them once the ttl expires
// or when a token names a kid the cached set does not hold.
type JWKSCache struct {
	uri        string
	client     *http.Client
	ttl        time.Duration
	minRefresh time.Duration

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	first   *rsa.PublicKey
	fetched time.Time
}

func NewJWKSCache(uri string, client *http.Client, ttl, minRefresh time.Duration) *JWKSCache {
	return &JWKSCache{
		uri:        uri,
		client:     client,
		ttl:        ttl,
		minRefresh: minRefresh,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// Key returns the key with the given id, or the first RSA key of the set when kid is empty.
func (c *JWKSCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key := c.lookup(kid)
	fresh := !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
	c.mu.RUnlock()

	if key != nil && fresh {
		return key, nil
	}

	// A miss on a fresh set means the provider may have rotated its keys.
	if err := c.refresh(ctx, key == nil); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if key = c.lookup(kid); key == nil {
		return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
	}

	return key, nil
}

func (c *JWKSCache) lookup(kid string) *rsa.PublicKey {
	if kid == "" {
		return c.first
	}

	return c.keys[kid]
}

func (c *JWKSCache) refresh(ctx context.Context, force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetched.IsZero() && len(c.keys) > 0 {
		age := time.Since(c.fetched)

		// Another caller may have refreshed while we waited for the lock.
		if age < c.ttl && (!force || age < c.minRefresh) {
			return nil
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uri, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyProviderUnavailable, err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyProviderUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrKeyProviderUnavailable, response.StatusCode, c.uri)
	}

	var set struct {
		Keys []jsonWebKey `json:"keys"`
	}
	if err := json.NewDecoder(response.Body).Decode(&set); err != nil {
		return fmt.Errorf("%w: failed to decode key set: %w", ErrKeyProviderUnavailable, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))

	var first *rsa.PublicKey

	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" {
			continue
		}

		key, err := jwk.publicKey()
		if err != nil {
			continue
		}

		if first == nil {
			first = key
		}

		keys[jwk.Kid] = key
	}

	c.keys = keys
	c.first = first
	c.fetched = time.Now()

	return nil
}

func (k jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	n, err := decodeSegment(k.N)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}

	e, err := decodeSegment(k.E)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}

	exponent := 0
	for _, b := range e {
		exponent = exponent<<8 + int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: exponent}, nil
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
