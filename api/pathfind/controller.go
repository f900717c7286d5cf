package pathfindapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/playback"
	"github.com/thalath/gridpath/render"
	"github.com/thalath/gridpath/search"
	"github.com/thalath/gridpath/session"
)

// Config holds the controller settings.
type Config struct {
	DefaultAlgorithm search.Algorithm
	Timeout          time.Duration // Per-search deadline; zero disables it
	Capacity         int           // Number of responses kept for lookup by ID
}

// SearchController runs searches on request-scoped sessions.
type SearchController struct {
	defaultAlg search.Algorithm
	timeout    time.Duration
	results    *resultStore
}

// NewSearchController initializes a SearchController.
func NewSearchController(cfg Config) *SearchController {
	return &SearchController{
		defaultAlg: cfg.DefaultAlgorithm,
		timeout:    cfg.Timeout,
		results:    newResultStore(cfg.Capacity),
	}
}

// Register registers the search routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	searches := route.Group("/search")
	{
		searches.POST("", sc.search)
		searches.GET("/:ID", sc.searchInfo)
		searches.GET("/:ID/image", sc.searchImage)
	}
}

// algorithms lists the selectable algorithms.
func (sc *SearchController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{
		Algorithms: search.Algorithms(),
		Default:    sc.defaultAlg,
	})
}

// search runs one search to completion and returns it with its full replay.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alg := sc.defaultAlg
	if request.Algorithm != "" {
		var err error
		if alg, err = search.ParseAlgorithm(request.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	runCtx := ctx.Request.Context()
	if sc.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, sc.timeout)
		defer cancel()
	}

	s, err := session.New(request.Width, request.Height,
		session.WithSearchOptions(search.WithContext(runCtx)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = s.Configure(*request.Start, *request.Goal, request.Walls); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.RunSearch(alg)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": "search did not finish in time"})
		return
	case err != nil:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &SearchResponse{
		ID:        uuid.New(),
		Algorithm: res.Algorithm,
		Found:     res.Found,
		Cost:      res.Cost(),
		Expanded:  res.Expanded,
		Visited:   nonNil(res.VisitedOrder),
		Path:      nonNil(res.Path),
		Events:    []playback.Event{},
	}
	for {
		e, ok := s.StepPlayback()
		if !ok {
			break
		}
		response.Events = append(response.Events, e)
	}
	sc.results.put(record{response: response, grid: s.Grid()})

	ctx.JSON(http.StatusOK, response)
}

// searchInfo returns a previously computed search by ID.
func (sc *SearchController) searchInfo(ctx *gin.Context) {
	rec, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, rec.response)
}

// searchImage renders a previously computed search as a PNG.
func (sc *SearchController) searchImage(ctx *gin.Context) {
	rec, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.PNG(&buf, rec.grid, rec.response.Path, render.DefaultScale); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering search"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// lookup resolves the :ID parameter, writing the error response on failure.
func (sc *SearchController) lookup(ctx *gin.Context) (record, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return record{}, false
	}
	rec, ok := sc.results.get(ID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such search"})
		return record{}, false
	}
	return rec, true
}

func nonNil(cs []grid.Coord) []grid.Coord {
	if cs == nil {
		return []grid.Coord{}
	}
	return cs
}
