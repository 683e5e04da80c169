package http

import (
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"
)

func touch(t *testing.T, dir, name string) {
    t.Helper()
    full := filepath.Join(dir, filepath.FromSlash(name))
    if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil { t.Fatal(err) }
    if err := os.WriteFile(full, []byte("x"), 0o644); err != nil { t.Fatal(err) }
}

func TestCacheLifetimeByExtension(t *testing.T) {
    root := t.TempDir()
    touch(t, root, "app.js")
    touch(t, root, "config.json")
    st := newStaticResolver(root, t.TempDir(), moduleRewrites, true, zerolog.Nop())

    cases := []struct {
        path string
        want string
    }{
        {"/app.js", cacheLong},
        {"/config.json", cacheShort},
    }
    for _, tc := range cases {
        w := httptest.NewRecorder()
        c, _ := gin.CreateTestContext(w)
        c.Request = httptest.NewRequest(http.MethodGet, tc.path, nil)
        if !st.serveAsset(c, tc.path) { t.Fatalf("%s not served", tc.path) }
        if got := w.Header().Get("Cache-Control"); got != tc.want {
            t.Fatalf("%s Cache-Control = %q, want %q", tc.path, got, tc.want)
        }
    }
}

func TestServeAssetIgnoresDirectoriesAndMissing(t *testing.T) {
    root := t.TempDir()
    touch(t, root, "js/app.js")
    st := newStaticResolver(root, t.TempDir(), moduleRewrites, true, zerolog.Nop())

    for _, p := range []string{"/js", "/missing.css", "/"} {
        w := httptest.NewRecorder()
        c, _ := gin.CreateTestContext(w)
        c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
        if st.serveAsset(c, p) { t.Fatalf("%s should not be served", p) }
    }
}

func TestResolveModuleOrder(t *testing.T) {
    root := t.TempDir()
    nodeDir := t.TempDir()
    // same file name in two rewrite targets: the earlier rewrite must win
    touch(t, root, "js/utils/dup.js")
    touch(t, root, "js/core/dup.js")
    touch(t, nodeDir, "js/vendor.js")
    st := newStaticResolver(root, nodeDir, moduleRewrites, true, zerolog.Nop())

    full, ok := st.resolveModule("/js/dup.js")
    if !ok { t.Fatal("dup.js not resolved") }
    if full != filepath.Join(root, "js", "utils", "dup.js") {
        t.Fatalf("resolved %s, want the utils rewrite", full)
    }

    // external-dependency directory is the last resort
    full, ok = st.resolveModule("/js/vendor.js")
    if !ok { t.Fatal("vendor.js not resolved") }
    if full != filepath.Join(nodeDir, "js", "vendor.js") {
        t.Fatalf("resolved %s, want node modules path", full)
    }

    if _, ok := st.resolveModule("/js/absent.js"); ok {
        t.Fatal("absent module should not resolve")
    }
}

func TestFallbackSanitizesTraversal(t *testing.T) {
    root := t.TempDir()
    touch(t, root, "index.html")
    parentFile := filepath.Join(filepath.Dir(root), "secret.txt")
    if err := os.WriteFile(parentFile, []byte("secret"), 0o644); err != nil { t.Fatal(err) }
    st := newStaticResolver(root, t.TempDir(), moduleRewrites, true, zerolog.Nop())

    w := httptest.NewRecorder()
    c, _ := gin.CreateTestContext(w)
    c.Request = httptest.NewRequest(http.MethodGet, "/x/../../secret.txt", nil)
    st.fallback(c)
    if w.Body.String() == "secret" { t.Fatal("traversal escaped the content root") }
}
