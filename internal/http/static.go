/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "net/http"
    "os"
    "path"
    "path/filepath"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"
)

// Content-Type overrides by extension. Anything else is left to Go's own
// content sniffing when the file is served.
var contentTypes = map[string]string{
    ".js":   "application/javascript",
    ".css":  "text/css",
    ".html": "text/html",
    ".json": "application/json",
    ".svg":  "image/svg+xml",
}

// Extensions that get the long cache lifetime (binary, font, image, script,
// style assets). Everything else is cached for an hour.
var longCacheExts = map[string]bool{
    ".js": true, ".css": true, ".png": true, ".jpg": true, ".jpeg": true,
    ".gif": true, ".svg": true, ".ico": true, ".woff": true, ".woff2": true,
    ".ttf": true, ".eot": true,
}

const (
    cacheLong  = "public, max-age=86400"
    cacheShort = "public, max-age=3600"
)

// moduleRewrites is the ordered list of directory guesses tried for a script
// request the literal path misses. Compatibility with how the frontend moved
// its modules around; keep the order.
var moduleRewrites = []string{"/js/utils/", "/js/components/", "/js/core/", "/js/auth/"}

// mockModuleRewrites additionally guesses the charts directory. The two lists
// drifted apart in the servers this replaces and are kept apart on purpose.
var mockModuleRewrites = []string{"/js/utils/", "/js/components/", "/js/core/", "/js/auth/", "/js/charts/"}

// staticResolver serves files under a content root with per-extension headers,
// retries script paths through the module rewrite list, and finally hands
// unmatched requests to the SPA document or a JSON 404.
type staticResolver struct {
    root        string
    nodeModules string
    rewrites    []string
    index       string
    // scriptError selects the production behavior of answering a missed
    // script path with a synthetic console.error body instead of falling
    // through to the generic fallback.
    scriptError bool
    log         zerolog.Logger
}

func newStaticResolver(root, nodeModules string, rewrites []string, scriptError bool, log zerolog.Logger) *staticResolver {
    return &staticResolver{
        root:        root,
        nodeModules: nodeModules,
        rewrites:    rewrites,
        index:       filepath.Join(root, "index.html"),
        scriptError: scriptError,
        log:         log,
    }
}

// fallback is the NoRoute chain: static asset, then module rewrites for
// scripts, then SPA document for HTML clients, then JSON 404.
func (s *staticResolver) fallback(c *gin.Context) {
    reqPath := path.Clean("/" + c.Request.URL.Path)

    if s.serveAsset(c, reqPath) { return }

    if strings.HasSuffix(reqPath, ".js") {
        if full, ok := s.resolveModule(reqPath); ok {
            serveFile(c, full)
            return
        }
        if s.scriptError {
            s.log.Warn().Str("path", reqPath).Msg("module not found")
            c.Header("Content-Type", "application/javascript")
            c.String(http.StatusNotFound, "console.error('Module not found: %s');", reqPath)
            return
        }
    }

    if acceptsHTML(c) {
        s.serveIndex(c)
        return
    }

    c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "path": c.Request.RequestURI})
}

// serveAsset serves reqPath relative to the content root if it names a regular
// file, and reports whether it did. Absence is not an error here; the caller
// moves on to the next resolver.
func (s *staticResolver) serveAsset(c *gin.Context, reqPath string) bool {
    if reqPath == "/" { return false }
    full := filepath.Join(s.root, filepath.FromSlash(reqPath))
    if !regularFile(full) { return false }
    serveFile(c, full)
    return true
}

// resolveModule walks the rewrite list for a script path: the literal path
// first, each /js/ directory guess next, the external-dependency directory
// last. First existing file wins.
func (s *staticResolver) resolveModule(reqPath string) (string, bool) {
    candidates := make([]string, 0, len(s.rewrites)+2)
    candidates = append(candidates, filepath.Join(s.root, filepath.FromSlash(reqPath)))
    if strings.Contains(reqPath, "/js/") {
        for _, rw := range s.rewrites {
            rewritten := strings.Replace(reqPath, "/js/", rw, 1)
            candidates = append(candidates, filepath.Join(s.root, filepath.FromSlash(rewritten)))
        }
    }
    candidates = append(candidates, filepath.Join(s.nodeModules, filepath.FromSlash(reqPath)))
    for _, cand := range candidates {
        if regularFile(cand) { return cand, true }
    }
    return "", false
}

// serveIndex answers with the SPA entry document and 200 regardless of the
// requested path, so client-side routes survive reloads and bookmarks.
func (s *staticResolver) serveIndex(c *gin.Context) {
    if !regularFile(s.index) {
        c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "path": c.Request.RequestURI})
        return
    }
    serveFile(c, s.index)
}

// servePage serves one of the fixed HTML documents from the content root.
func (s *staticResolver) servePage(name string) gin.HandlerFunc {
    full := filepath.Join(s.root, name)
    return func(c *gin.Context) {
        if !regularFile(full) {
            c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "path": c.Request.RequestURI})
            return
        }
        serveFile(c, full)
    }
}

func serveFile(c *gin.Context, full string) {
    ext := strings.ToLower(filepath.Ext(full))
    if ct, ok := contentTypes[ext]; ok {
        c.Header("Content-Type", ct)
    }
    if longCacheExts[ext] {
        c.Header("Cache-Control", cacheLong)
    } else {
        c.Header("Cache-Control", cacheShort)
    }
    c.File(full)
}

func regularFile(full string) bool {
    info, err := os.Stat(full)
    return err == nil && info.Mode().IsRegular()
}

func acceptsHTML(c *gin.Context) bool {
    return strings.Contains(c.GetHeader("Accept"), "text/html")
}
