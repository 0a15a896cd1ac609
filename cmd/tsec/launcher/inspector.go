package launcher

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/tsec-chaincfg/chaincfg"
)

const shutdownTimeout = 5 * time.Second

// Inspector serves a read-only JSON view of one network profile.
type Inspector struct {
	r   *gin.Engine
	p   *chaincfg.Params
	log logrus.FieldLogger
}

func NewInspector(p *chaincfg.Params, log logrus.FieldLogger) *Inspector {
	gin.SetMode(gin.ReleaseMode)
	s := &Inspector{
		r:   gin.New(),
		p:   p,
		log: log,
	}
	s.r.Use(gin.Recovery(), s.accessLog)
	s.r.GET("/params", s.getParams)
	s.r.GET("/checkpoints", s.getCheckpoints)
	s.r.GET("/checkpoints/:height", s.getCheckpoint)
	s.r.GET("/genesis", s.getGenesis)
	s.r.GET("/seeds", s.getSeeds)
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Inspector) Handler() http.Handler {
	return s.r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Inspector) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.WithField("addr", addr).Info("Inspector listening")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("Inspector shutting down")
	return srv.Shutdown(sctx)
}

func (s *Inspector) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.WithFields(logrus.Fields{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"elapsed": time.Since(start),
	}).Debug("HTTP request")
}

func (s *Inspector) getParams(c *gin.Context) {
	c.JSON(http.StatusOK, newParamsView(s.p))
}

func (s *Inspector) getCheckpoints(c *gin.Context) {
	c.JSON(http.StatusOK, newCheckpointsView(s.p.Checkpoints()))
}

func (s *Inspector) getCheckpoint(c *gin.Context) {
	height, err := strconv.ParseUint(c.Param("height"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height"})
		return
	}
	hash, ok := s.p.Checkpoint(idx.Block(height))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no checkpoint", "height": height})
		return
	}
	c.JSON(http.StatusOK, checkpointView{Height: height, Hash: hash.String()})
}

func (s *Inspector) getGenesis(c *gin.Context) {
	b, err := s.p.GenesisBlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newGenesisView(s.p.GenesisHash(), b))
}

func (s *Inspector) getSeeds(c *gin.Context) {
	c.JSON(http.StatusOK, newSeedsView(s.p.Seeds()))
}
