// Package httpserve serves a directory over HTTP.
//
// Files are returned as-is, directories as a simple HTML listing, and
// anything under /tower/ is handed to net/http's FileServer. Request paths
// are cleaned so they can never leave the served directory.
package httpserve

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	logger "github.com/PolarWolf314/rcli/internal/logging"

	"github.com/gin-gonic/gin"
)

const towerPrefix = "/tower"

// Options configures the server.
type Options struct {
	Dir  string
	Port int
}

type server struct {
	dir string
	log logger.Logger
}

// NewRouter builds the gin engine serving dir.
func NewRouter(dir string, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	s := &server{dir: dir, log: log}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	tower := http.StripPrefix(towerPrefix, http.FileServer(http.Dir(dir)))
	router.GET("/*path", func(c *gin.Context) {
		p := c.Param("path")
		if p == towerPrefix || strings.HasPrefix(p, towerPrefix+"/") {
			tower.ServeHTTP(c.Writer, c.Request)
			return
		}
		s.fileHandler(c, p)
	})
	return router
}

// Serve listens on opts.Port until ctx is cancelled, then shuts down.
func Serve(ctx context.Context, opts Options, log logger.Logger) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(opts.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(opts.Dir, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("Serving %s on %s", opts.Dir, addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Infof("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debugf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (s *server) fileHandler(c *gin.Context, requestPath string) {
	rel := path.Clean("/" + requestPath)
	p := filepath.Join(s.dir, filepath.FromSlash(rel))
	s.log.Infof("Reading file %s", p)

	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(fmt.Sprintf("File %s not found", html.EscapeString(rel))))
			return
		}
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(html.EscapeString(err.Error())))
		return
	}

	if info.IsDir() {
		s.dirListing(c, p, rel)
		return
	}

	content, err := os.ReadFile(p)
	if err != nil {
		s.log.Warnf("Error reading file %s: %v", p, err)
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(html.EscapeString(err.Error())))
		return
	}
	s.log.Infof("Read %d bytes", len(content))
	c.Data(http.StatusOK, http.DetectContentType(content), content)
}

func (s *server) dirListing(c *gin.Context, dir, rel string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(html.EscapeString(err.Error())))
		return
	}

	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		href := path.Join(rel, e.Name())
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, html.EscapeString(href), html.EscapeString(name))
	}
	b.WriteString("</ul></body></html>")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}
