package builtin

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/statepane/statepane/auth"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/network"
	"github.com/statepane/statepane/source"
	"github.com/spf13/viper"
)

// HTTPName is the name of the http source, and the keyring entry of its token.
const HTTPName = "http"

// HTTP loads the URL given as target. JSON and YAML responses are decoded as item lists, anything
// else is read line by line.
type HTTP struct {
	client *http.Client
}

func NewHTTP() *HTTP {
	return &HTTP{client: network.New(viper.GetDuration(key.NetworkTimeout))}
}

func (*HTTP) Name() string { return HTTPName }
func (*HTTP) ID() string   { return HTTPName + " builtin" }

func (h *HTTP) Load(ctx context.Context, target string) ([]*source.Item, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, source.ErrNoTarget
	}
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, text/plain;q=0.8")

	token, err := auth.GetToken(HTTPName)
	if err != nil {
		log.Warnf("http: reading token: %v", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: %s", target, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}

	items, err := decode(body, formatOfContentType(resp.Header.Get("Content-Type")))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Source = h
	}
	return items, nil
}

func formatOfContentType(contentType string) format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return formatLines
	}

	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return formatJSON
	case strings.Contains(mediaType, "yaml"):
		return formatYAML
	default:
		return formatLines
	}
}
