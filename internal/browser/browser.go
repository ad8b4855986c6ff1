// Package browser opens article links in the system browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

// OpenArticle opens an article's "read more" link. Articles without a
// source URL are rejected up front rather than handed to the OS.
func OpenArticle(a article.Processed) error {
	if a.URL == "" {
		return fmt.Errorf("article %q has no source URL", a.Title)
	}
	return Open(a.URL)
}

// Open launches the default browser for an http(s) URL. Other schemes are
// rejected before anything is executed.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// rundll32 avoids cmd /c start shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
