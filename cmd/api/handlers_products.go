package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/product"
)

// listProductsHandler godoc
// @Summary Browse the catalog
// @Tags products
// @Produce json
// @Param q query string false "search term"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} product.ListResponse
// @Router /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		q := product.Query{
			Q:      c.Query("q"),
			Limit:  limit,
			Offset: offset,
			// storefront sees available snacks only
			AvailableOnly: true,
		}
		items, err := repo.List(c.Request.Context(), q)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		if items == nil {
			items = []product.Product{}
		}
		c.JSON(http.StatusOK, product.ListResponse{Q: q.Q, Limit: limit, Offset: offset, Items: items})
	}
}

// getProductHandler godoc
// @Summary Fetch one product
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} product.Product
// @Failure 404 {object} httpx.ErrorBody
// @Router /products/{id} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary Add a product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Param product body product.CreateProductRequest true "product"
// @Success 201 {object} product.Product
// @Failure 400 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price == "" {
			httpx.Error(c, http.StatusBadRequest, "name and price are required")
			return
		}
		if req.Stock < 0 {
			httpx.Error(c, http.StatusBadRequest, "stock must be non-negative")
			return
		}
		p := &product.Product{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
			Price:       req.Price,
			Stock:       req.Stock,
			IsAvailable: req.IsAvailable,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary Update a product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body product.UpdateProductRequest true "fields to change"
// @Success 200 {object} product.Product
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /products/{id} [put]
func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		cur, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				httpx.Error(c, http.StatusNotFound, "Product not found")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				httpx.Error(c, http.StatusBadRequest, "stock must be non-negative")
				return
			}
			cur.Stock = *req.Stock
		}
		if req.IsAvailable != nil {
			cur.IsAvailable = *req.IsAvailable
		}
		cur.Name = req.Name
		cur.Description = req.Description
		cur.Image = req.Image
		updatePrice := req.Price != ""
		if updatePrice {
			cur.Price = req.Price
		}

		if err := repo.Update(c.Request.Context(), cur, updatePrice); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to fetch updated product")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteProductHandler godoc
// @Summary Remove a product (admin)
// @Tags products
// @Param id path string true "product id"
// @Success 204
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /products/{id} [delete]
func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
