package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/bengobox/status-service/internal/httpapi/handlers"
)

// maxBody bounds how much of the response is read.
const maxBody = 1 << 10

// Check issues GET baseURL/ and succeeds only on 200 with the root health message.
func Check(ctx context.Context, client *http.Client, baseURL string) error {
	url := strings.TrimSuffix(baseURL, "/") + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if string(body) != handlers.RootMessage {
		return fmt.Errorf("get %s: unexpected body %q", url, body)
	}
	return nil
}

// LocalURL returns the URL used to reach a server bound to host:port from
// the same machine.
func LocalURL(host string, port int) string {
	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::", "[::]":
		host = "::1"
	}
	return "http://" + net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(port))
}
