package handlers

import (
	"net/http"

	"pharmacy-server/models"

	"github.com/gin-gonic/gin"
)

type toggleWishlistRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Product   *models.Product `json:"product,omitempty"`
}

// GetWishlist returns the client's wishlist resolved to product records.
func GetWishlist(c *gin.Context) {
	products, err := Wishlist.Products(clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// ToggleWishlist flips membership for one product. Non-catalog products must
// carry their record in the body the first time they are added.
func ToggleWishlist(c *gin.Context) {
	var req toggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	added, err := Wishlist.Toggle(clientID(c), req.ProductID, req.Product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product_id": req.ProductID, "in_wishlist": added})
}
