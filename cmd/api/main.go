package main

import (
	"context"
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/edumonitor/internal/api"
	"github.com/bildungswerk/edumonitor/internal/classifier"
	"github.com/bildungswerk/edumonitor/internal/collector"
	"github.com/bildungswerk/edumonitor/internal/config"
	"github.com/bildungswerk/edumonitor/internal/processor"
	"github.com/bildungswerk/edumonitor/internal/scheduler"
	"github.com/bildungswerk/edumonitor/internal/storage"
	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

func main() {
	cfg := config.Load()

	tax := taxonomy.Default()
	if cfg.TaxonomyFile != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			log.Fatalf("load taxonomy failed: %v", err)
		}
		tax = loaded
	}

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr, tax.Known())
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	fetchers := collector.FromSources(cfg.Feeds, cfg.Pages)
	p := processor.New(classifier.New(tax))

	s, err := scheduler.New(cfg.CronSpec, fetchers, p, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	// First cycle runs synchronously before the API comes up, so the very
	// first report already has data.
	s.Start()

	r := gin.Default()
	if cfg.BasicAuthUser != "" && cfg.BasicAuthPass != "" {
		r.Use(basicAuthMiddleware(cfg.BasicAuthUser, cfg.BasicAuthPass))
	}

	apiServer := api.NewServer(store)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("starting api server at %s ...", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server exit: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

// basicAuthMiddleware protects the whole site with one shared credential.
// /health stays open for health checks.
func basicAuthMiddleware(user, pass string) gin.HandlerFunc {
	uBytes := []byte(user)
	pBytes := []byte(pass)

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}
		u, p, okAuth := c.Request.BasicAuth()
		if !okAuth ||
			subtle.ConstantTimeCompare([]byte(u), uBytes) != 1 ||
			subtle.ConstantTimeCompare([]byte(p), pBytes) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="Restricted"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
