package handlers

import (
	"net/http"
	"strconv"

	"pharmacy-server/catalog"
	"pharmacy-server/models"
	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
)

// GetProducts lists the catalog. With ?q= it runs the hybrid search on the
// browse path (no result cap).
func GetProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"products": catalog.All()})
		return
	}
	products := Search.Search(c.Request.Context(), query, 0)
	c.JSON(http.StatusOK, gin.H{"products": products, "query": query})
}

// GetProduct resolves one product by id: catalog ids below the synthetic
// threshold, wishlisted custom products above it. This is the deep-link
// target consumed when the storefront loads with a product id.
func GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if id < models.SyntheticIDThreshold {
		if p := catalog.FindByID(id); p != nil {
			c.JSON(http.StatusOK, p)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	p, err := Wishlist.CustomProduct(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AskAboutProduct publishes an ask-assistant event for a catalog product, so
// the chat opens with a pre-submitted question about it.
func AskAboutProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	p := catalog.FindByID(id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	services.Bus.Publish(services.TopicAskAssistant, services.AskAssistantEvent{
		ClientID:    clientID(c),
		ProductName: p.Name,
		Description: p.Description,
	})
	c.JSON(http.StatusAccepted, gin.H{"status": "asked", "product": p.Name})
}

// SearchProducts is the standalone hybrid search endpoint.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	products := Search.Search(c.Request.Context(), query, limit)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"query":    query,
		"count":    len(products),
	})
}
