package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	defaultFetcherUserAgent    = "go-recipe-keeper/1.0 (+recipe import)"
	defaultFetcherMaxBodyBytes = 2 << 20
)

type httpPageFetcher struct {
	client       *utils.HTTPClient
	maxBodyBytes int64
	logger       *logger.Logger
}

// NewHTTPPageFetcher constructs a [PageFetcher] that downloads pages with
// resty and keeps at most cfg.MaxBodyBytes of each body.
func NewHTTPPageFetcher(cfg config.Fetcher, log *logger.Logger) PageFetcher {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultFetcherUserAgent
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultFetcherMaxBodyBytes
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:   cfg.Timeout,
		UserAgent: userAgent,
	})

	return &httpPageFetcher{client: client, maxBodyBytes: maxBody, logger: log}
}

// Fetch implements [PageFetcher].
func (f *httpPageFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	log := logger.FromContext(ctx)

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageURL, rawURL)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,text/plain;q=0.9,*/*;q=0.5").
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		log.Err(err).Str("func", "httpPageFetcher.Fetch").Str("host", u.Host).Msg("page request failed")
		return "", fmt.Errorf("fetch page request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(io.LimitReader(body, f.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read page body: %w", err)
	}

	var text string
	if strings.Contains(resp.Header().Get("Content-Type"), "html") || looksLikeHTML(raw) {
		text, err = htmlToText(strings.NewReader(string(raw)))
		if err != nil {
			return "", fmt.Errorf("parse page html: %w", err)
		}
	} else {
		text = strings.TrimSpace(string(raw))
	}

	if text == "" {
		return "", ErrEmptyPage
	}

	log.Debug().
		Str("func", "httpPageFetcher.Fetch").
		Str("host", u.Host).
		Int("bytes", len(raw)).
		Int("text_len", len(text)).
		Msg("page fetched")

	return text, nil
}

func looksLikeHTML(raw []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(raw[:min(len(raw), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// htmlToText returns the visible text of an HTML document, one text node
// per line. Scripts and styles are dropped except JSON-LD blocks, which
// recipe sites use for structured recipe data.
func htmlToText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script:
				if isJSONLD(n) && n.FirstChild != nil {
					if s := strings.TrimSpace(n.FirstChild.Data); s != "" {
						lines = append(lines, s)
					}
				}
				return
			case atom.Style, atom.Noscript, atom.Template, atom.Svg, atom.Iframe:
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.Join(strings.Fields(n.Data), " "); s != "" {
				lines = append(lines, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(lines, "\n"), nil
}

func isJSONLD(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key == "type" && strings.EqualFold(strings.TrimSpace(a.Val), "application/ld+json") {
			return true
		}
	}
	return false
}
