package sol

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meerkat-millionaires/kat-staking/app"
)

const maxMetadataBytes = 1 << 20

var ErrNoImage = errors.New("metadata has no image")

// MetadataStore resolves off-chain NFT metadata.
type MetadataStore interface {
	FetchImage(ctx context.Context, uri string) (string, error)
}

type httpMetadataStore struct {
	client *http.Client
}

type offChainMetadata struct {
	Image string `json:"image"`
}

// FetchImage downloads the json document at uri and returns its image field.
func (s *httpMetadataStore) FetchImage(ctx context.Context, uri string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch metadata %s: status %d", uri, res.StatusCode)
	}

	var doc offChainMetadata
	if err := json.NewDecoder(io.LimitReader(res.Body, maxMetadataBytes)).Decode(&doc); err != nil {
		return "", fmt.Errorf("decode metadata %s: %w", uri, err)
	}
	if doc.Image == "" {
		return "", ErrNoImage
	}
	return doc.Image, nil
}

func NewMetadataStore() MetadataStore {
	return &httpMetadataStore{
		client: &http.Client{
			Timeout: time.Duration(app.Config.Metadata.HTTPTimeoutMillis) * time.Millisecond,
		},
	}
}
