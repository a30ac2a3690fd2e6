package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/benchlab/bench-api/internal/httpx"
	"github.com/benchlab/bench-api/internal/item"
)

func buildRouter(repo item.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default()) // any origin
	r.Use(httpx.ProcessTime())
	r.Use(httpx.RequestID())
	r.Use(httpx.Logger())

	r.GET("/", rootHandler())
	r.GET("/items/:item_id", readItemHandler())
	r.GET("/health", healthHandler(repo))

	r.POST("/echo", echoPostHandler())
	r.GET("/echo/:message", echoGetHandler())

	r.GET("/db/items", listItemsHandler(repo))
	r.POST("/db/items", createItemHandler(repo))
	r.GET("/db/items/:item_id", getItemHandler(repo))
	r.PUT("/db/items/:item_id", updateItemHandler(repo))
	r.DELETE("/db/items/:item_id", deleteItemHandler(repo))
	r.GET("/db/benchmark/select/:count", benchmarkSelectHandler(repo))

	r.GET("/stress/cpu/:iterations", cpuStressHandler())
	r.GET("/stress/memory/:size_mb", memoryStressHandler())

	return r
}
