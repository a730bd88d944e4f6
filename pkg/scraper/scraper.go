package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bobesa/go-domain-util/domainutil"
	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"go.uber.org/ratelimit"

	"github.com/arvheim/fkit/pkg/config"
	"github.com/arvheim/fkit/pkg/httputils"
	"github.com/arvheim/fkit/pkg/logger"
)

func New(cfg config.ScraperConfig) *Scraper {
	l := logger.GetLogger("scraper")

	return &Scraper{
		http: httputils.NewRetryableHttpClient(
			time.Duration(cfg.TimeoutSeconds)*time.Second,
			ratelimit.New(2, ratelimit.WithoutSlack),
			l,
		),
		userAgent: cfg.UserAgent,
		log:       l,
	}
}

// FetchAll fetches pageURL, collects every anchor linking a .pdf and
// downloads each linked document into outDir (created when missing).
// Relative hrefs are resolved against the page URL. Unless AllowExternal
// is set, links outside the page's registered domain are skipped. Returns
// the number of documents downloaded.
func (s *Scraper) FetchAll(ctx context.Context, pageURL string, outDir string) (int, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return 0, errors.Wrapf(err, "parse url %q", pageURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return 0, fmt.Errorf("unsupported url scheme %q", base.Scheme)
	}

	links, err := s.collectLinks(ctx, base)
	if err != nil {
		return 0, err
	}

	s.log.Infof("Found %d pdf links on %s", len(links), pageURL)

	if len(links) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "create output dir %q", outDir)
	}

	downloaded := 0
	for _, link := range links {
		if !s.AllowExternal && domainutil.Domain(link.Host) != domainutil.Domain(base.Host) {
			s.log.Warnf("Skipping external link: %s", link)
			continue
		}

		outPath := filepath.Join(outDir, path.Base(link.Path))
		if err := s.download(ctx, link.String(), outPath); err != nil {
			return downloaded, err
		}

		s.log.Infof("Saved %s", outPath)
		downloaded++

		if s.OnDownload != nil {
			s.OnDownload(link.String())
		}
	}

	return downloaded, nil
}

func (s *Scraper) collectLinks(ctx context.Context, base *url.URL) ([]*url.URL, error) {
	resp, err := s.get(ctx, base.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "parse page %s", base)
	}

	seen := strset.New()
	var links []*url.URL

	doc.Find(`a[href$='.pdf']`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			s.log.WithError(err).Warnf("Skipping malformed href %q", href)
			return
		}

		link := base.ResolveReference(ref)
		if seen.Has(link.String()) {
			return
		}

		seen.Add(link.String())
		links = append(links, link)
	})

	return links, nil
}

func (s *Scraper) download(ctx context.Context, fileURL string, outPath string) error {
	s.log.Debugf("Downloading %s", fileURL)

	resp, err := s.get(ctx, fileURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %q", outPath)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %q", outPath)
	}

	return out.Close()
}

func (s *Scraper) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "create request %s", rawURL)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", rawURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %s", rawURL, resp.Status)
	}

	return resp, nil
}
