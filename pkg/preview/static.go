package preview

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// sanitizeRelPath returns a sanitized relative path for a static file
// request. It rejects traversal and absolute-path tricks so serving
// cannot escape the site directory.
func sanitizeRelPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path
	// attempt (e.g. "//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts and changing the meaning of the request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Defense-in-depth: reject OS-absolute/volume paths after slash conversion.
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

// handleStatic serves files from the site directory. Directory requests
// map to index.html; in watch mode HTML responses get the reload script
// injected before the closing body tag.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	rel := "index.html"
	if r.URL.Path != "/" {
		var ok bool
		rel, ok = sanitizeRelPath(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
	}

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		rel = path.Join(rel, "index.html")
		full = filepath.Join(s.root, filepath.FromSlash(rel))
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	if s.watch && isHTMLPath(rel) {
		s.serveInjectedHTML(w, r, full)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, rel, info.ModTime(), f)
}

// serveInjectedHTML serves an HTML file with the reload client script
// injected before </body>, or appended when no body tag exists.
func (s *Server) serveInjectedHTML(w http.ResponseWriter, r *http.Request, full string) {
	data, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	html := string(data)
	if idx := strings.LastIndex(html, "</body>"); idx != -1 {
		html = html[:idx] + reloadClientScript + html[idx:]
	} else {
		html += reloadClientScript
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Write([]byte(html))
}

func isHTMLPath(rel string) bool {
	switch strings.ToLower(path.Ext(rel)) {
	case ".html", ".htm":
		return true
	}
	return false
}
