package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPageFollowsRedirectsUpToCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hop := 0
		fmt.Sscanf(r.URL.Path, "/hop/%d", &hop)
		if hop < 3 {
			http.Redirect(w, r, fmt.Sprintf("/hop/%d", hop+1), http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("<html>landed</html>"))
	}))
	defer srv.Close()

	c := New(Options{MaxRedirects: 5})
	res, err := c.Page(context.Background(), srv.URL+"/hop/0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(res.FinalURL.Path, "/hop/3") {
		t.Fatalf("redirects not followed, final url %s", res.FinalURL)
	}
}

func TestPageRejectsRedirectLoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/again", http.StatusFound)
	}))
	defer srv.Close()

	c := New(Options{MaxRedirects: 3})
	_, err := c.Page(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected redirect-cap error")
	}
	if !errors.Is(err, ErrTooManyRedirects) {
		t.Fatalf("expected ErrTooManyRedirects, got %v", err)
	}
}

func TestPageRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(Options{})
	if _, err := c.Page(context.Background(), srv.URL); err == nil {
		t.Fatal("404 should be a fetch failure")
	}
}

func TestPageTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(Options{Timeout: 50 * time.Millisecond})
	if _, err := c.Page(context.Background(), srv.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestPageDecodesLegacyCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "café" with an ISO-8859-1 encoded e-acute.
		_, _ = w.Write([]byte{'c', 'a', 'f', 0xE9})
	}))
	defer srv.Close()

	c := New(Options{})
	res, err := c.Page(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(res.Body), "café") {
		t.Fatalf("body not decoded to UTF-8: %q", res.Body)
	}
	if res.RawSize != 4 {
		t.Fatalf("raw size should reflect the wire payload, got %d", res.RawSize)
	}
}

func TestPageSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	c := New(Options{UserAgent: "audit-test/1.0"})
	if _, err := c.Page(context.Background(), srv.URL); err != nil {
		t.Fatal(err)
	}
	if gotUA != "audit-test/1.0" {
		t.Fatalf("user agent not sent, got %q", gotUA)
	}
}

func TestAuxiliaryNeverFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *"))
	}))

	c := New(Options{AuxTimeout: 100 * time.Millisecond})

	res := c.Auxiliary(context.Background(), srv.URL)
	if !res.Reachable || res.StatusCode != 200 || res.Body != "User-agent: *" {
		t.Fatalf("unexpected aux result: %+v", res)
	}

	// A closed server is unreachable, not an error.
	srv.Close()
	res = c.Auxiliary(context.Background(), srv.URL)
	if res.Reachable {
		t.Fatalf("closed server should be unreachable: %+v", res)
	}
}

func TestAuxiliaryTruncatedBodyIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare more bytes than are sent; the connection is cut before
		// the client can finish reading the body.
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte("User-agent"))
	}))
	defer srv.Close()

	c := New(Options{AuxTimeout: time.Second})
	res := c.Auxiliary(context.Background(), srv.URL)
	if res.Reachable {
		t.Fatalf("truncated body should count as unretrieved: %+v", res)
	}
}
