package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var session = sync.OnceValue[string](func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

// fileOrFetch returns the contents of filename, fetching url into it first
// if it does not exist yet.
func (p *Puzzle) fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		p.log.Debug("using cached input", zap.String("file", filename))
		return f
	}

	p.log.Info("fetching input", zap.String("url", url))
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := MustGet(http.DefaultClient.Do(request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		panic(fmt.Sprintf("url %v failed: %v", url, res.Status))
	}
	return MustGet(io.ReadAll(res.Body))
}
