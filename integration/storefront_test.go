//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func TestStorefront_E2E(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	c := &http.Client{
		Jar:     jar,
		Timeout: 5 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	email := fmt.Sprintf("shopper_%d_%d@example.com", time.Now().Unix(), rand.Intn(100000))

	resp := postForm(t, c, baseURL+"/register", url.Values{
		"email":    {email},
		"password": {"password123"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register status=%d", resp.StatusCode)
	}

	body := get(t, c, baseURL+"/catalog/skis")
	if !strings.Contains(body, "/product/") {
		t.Fatalf("catalog has no products:\n%s", body)
	}

	resp = postForm(t, c, baseURL+"/add-to-cart/1", nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("add-to-cart status=%d", resp.StatusCode)
	}

	body = get(t, c, baseURL+"/cart")
	if !strings.Contains(body, "Total:") {
		t.Fatalf("cart missing total:\n%s", body)
	}

	resp = get2(t, c, baseURL+"/remove-from-cart/1")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("remove-from-cart status=%d", resp.StatusCode)
	}

	body = get(t, c, baseURL+"/cart")
	if !strings.Contains(body, "Your cart is empty.") {
		t.Fatalf("cart not empty after remove:\n%s", body)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func get(t *testing.T, c *http.Client, url string) string {
	t.Helper()

	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status=%d", url, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func get2(t *testing.T, c *http.Client, url string) *http.Response {
	t.Helper()

	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	_ = resp.Body.Close()
	return resp
}

func postForm(t *testing.T, c *http.Client, url string, vals url.Values) *http.Response {
	t.Helper()

	resp, err := c.PostForm(url, vals)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	_ = resp.Body.Close()
	return resp
}
