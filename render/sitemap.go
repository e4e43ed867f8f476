package render

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZacxDev/splugh/config"
)

type sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	Urls    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapContent lists every page under the config's origin. Hrefs that
// are already absolute URLs go in unchanged.
func sitemapContent(cfg *config.Config) (string, error) {
	origin := strings.TrimSuffix(cfg.Origin, "/")

	sm := sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, page := range cfg.Pages {
		loc := page.Href
		if !strings.Contains(loc, "://") {
			loc = origin + "/" + strings.TrimPrefix(loc, "/")
		}
		sm.Urls = append(sm.Urls, sitemapURL{Loc: loc})
	}

	xmlOutput, err := xml.MarshalIndent(sm, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding sitemap")
	}

	return xml.Header + string(xmlOutput) + "\n", nil
}
