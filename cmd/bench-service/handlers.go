package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/benchlab/bench-api/internal/httpx"
	"github.com/benchlab/bench-api/internal/item"
	"github.com/benchlab/bench-api/internal/stress"
)

// echoDelay models a fixed baseline processing cost on the echo endpoints.
const echoDelay = time.Millisecond

type echoRequest struct {
	Message string          `json:"message" binding:"required"`
	Data    json.RawMessage `json:"data"`
}

type itemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Hello":     "World",
			"timestamp": httpx.Timestamp(),
		})
	}
}

func readItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "item_id must be an integer"})
			return
		}
		var q *string
		if v, ok := c.GetQuery("q"); ok {
			q = &v
		}
		c.JSON(http.StatusOK, gin.H{
			"item_id":   id,
			"q":         q,
			"timestamp": httpx.Timestamp(),
		})
	}
}

func healthHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if err := repo.Ping(c.Request.Context()); err != nil {
			dbStatus = "disconnected"
		}
		// Overall status stays "healthy" either way; only the database
		// field reflects connectivity.
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": httpx.Timestamp(),
			"database":  dbStatus,
		})
	}
}

func echoPostHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req echoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "message is required"})
			return
		}

		start := time.Now()
		time.Sleep(echoDelay)

		c.JSON(http.StatusOK, gin.H{
			"message":            req.Message,
			"data":               req.Data,
			"timestamp":          httpx.Timestamp(),
			"processing_time_ms": millis(time.Since(start)),
		})
	}
}

func echoGetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		time.Sleep(echoDelay)

		c.JSON(http.StatusOK, gin.H{
			"message":            c.Param("message"),
			"timestamp":          httpx.Timestamp(),
			"processing_time_ms": millis(time.Since(start)),
		})
	}
}

func listItemsHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			log.Printf("[http] list items failed: %v", err)
			c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "item_id must be an integer"})
			return
		}
		it, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, item.ErrNotFound) {
				c.JSON(http.StatusNotFound, item.HTTPError{Error: "Item not found"})
				return
			}
			log.Printf("[http] get item failed: %v", err)
			c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

func createItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "name and price are required"})
			return
		}
		it, err := repo.Create(c.Request.Context(), req.Name, req.Description, *req.Price)
		if err != nil {
			if errors.Is(err, item.ErrInvalid) {
				c.JSON(http.StatusBadRequest, item.HTTPError{Error: "name must be non-empty and price non-negative"})
				return
			}
			log.Printf("[http] create item failed: %v", err)
			c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

func updateItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "item_id must be an integer"})
			return
		}
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "name and price are required"})
			return
		}
		it, err := repo.Update(c.Request.Context(), id, req.Name, req.Description, *req.Price)
		if err != nil {
			switch {
			case errors.Is(err, item.ErrInvalid):
				c.JSON(http.StatusBadRequest, item.HTTPError{Error: "name must be non-empty and price non-negative"})
			case errors.Is(err, item.ErrNotFound):
				c.JSON(http.StatusNotFound, item.HTTPError{Error: "Item not found"})
			default:
				log.Printf("[http] update item failed: %v", err)
				c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			}
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

func deleteItemHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "item_id must be an integer"})
			return
		}
		ok, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			log.Printf("[http] delete item failed: %v", err)
			c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, item.HTTPError{Error: "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Item %d deleted successfully", id),
		})
	}
}

func benchmarkSelectHandler(repo item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := strconv.Atoi(c.Param("count"))
		if err != nil || count < 0 {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "count must be a non-negative integer"})
			return
		}

		start := time.Now()
		fetched, err := repo.SelectN(c.Request.Context(), count)
		if err != nil {
			log.Printf("[http] benchmark select failed: %v", err)
			c.JSON(http.StatusInternalServerError, item.HTTPError{Error: "database error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rows_fetched":       fetched,
			"processing_time_ms": millis(time.Since(start)),
			"timestamp":          httpx.Timestamp(),
		})
	}
}

func cpuStressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		iterations, err := strconv.ParseUint(c.Param("iterations"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "iterations must be a non-negative integer"})
			return
		}

		result, elapsed := stress.CPU(iterations)

		c.JSON(http.StatusOK, gin.H{
			"iterations":         iterations,
			"result":             result,
			"processing_time_ms": millis(elapsed),
			"timestamp":          httpx.Timestamp(),
		})
	}
}

func memoryStressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sizeMB, err := strconv.Atoi(c.Param("size_mb"))
		if err != nil || sizeMB < 0 {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "size_mb must be a non-negative integer"})
			return
		}

		allocated, elapsed, err := stress.Memory(sizeMB)
		if err != nil {
			c.JSON(http.StatusBadRequest, item.HTTPError{Error: "Size too large, max 100MB"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"allocated_bytes":    allocated,
			"allocated_mb":       sizeMB,
			"processing_time_ms": millis(elapsed),
			"timestamp":          httpx.Timestamp(),
		})
	}
}
