package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/Gunvolt24/buzzline/pkg/httpx"
)

// Handler — HTTP-хендлеры поверх сервиса чтения сообщений.
// timeout ограничивает время одного запроса к сервису (0 — без ограничения).
type Handler struct {
	service ports.MessageReadService
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(service ports.MessageReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — собирает роутер: middleware, служебные и прикладные маршруты.
// otelServiceName пустой — трассировка HTTP-слоя отключена.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	// все маршруты — только GET, поэтому Allow фиксированный
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/message/:id", h.getMessageByID)
	r.GET("/messages/recent", h.listRecentMessages)
	r.GET("/messages/category/:category", h.listMessagesByCategory)
	r.GET("/stats/categories", h.categoryStats)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// requestContext — контекст запроса с таймаутом хендлера (если задан).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return c.Request.Context(), func() {}
}

func (h *Handler) getMessageByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	msg, err := h.service.GetMessage(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetMessage failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) listRecentMessages(c *gin.Context) {
	// limit с безопасным дефолтом и верхней границей
	limit := 20
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	msgs, err := h.service.RecentMessages(ctx, limit)
	if err != nil {
		h.log.Errorf(ctx, "RecentMessages failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) listMessagesByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty category"})
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	msgs, err := h.service.MessagesByCategory(ctx, category, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "MessagesByCategory failed category=%s err=%v", category, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) categoryStats(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	stats, err := h.service.CategoryStats(ctx)
	if err != nil {
		h.log.Errorf(ctx, "CategoryStats failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
