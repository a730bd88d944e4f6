package scraper

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type Scraper struct {
	// AllowExternal permits downloads from registered domains other than
	// the page's own.
	AllowExternal bool

	// OnDownload is invoked after each document has been saved.
	OnDownload func(fileURL string)

	http      *http.Client
	userAgent string
	log       *logrus.Entry
}
