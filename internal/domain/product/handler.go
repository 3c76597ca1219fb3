package product

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"villagemart/internal/pkg/logger"
	"villagemart/internal/pkg/response"
)

type Handler struct {
	service   *Service
	uploadDir string
}

func NewHandler(service *Service, uploadDir string) *Handler {
	return &Handler{service: service, uploadDir: uploadDir}
}

// Add lists a new product for the authenticated shopkeeper. Accepts a
// multipart form with an optional image file.
func (h *Handler) Add(c *gin.Context) {
	in, ok := h.parseForm(c, true)
	if !ok {
		return
	}

	shopkeeperID := c.GetInt64("user_id")
	p, err := h.service.Create(c.Request.Context(), shopkeeperID, CreateInput(*in))
	if err != nil {
		var nv *NotVerifiedError
		if errors.As(err, &nv) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":                "NOT_VERIFIED",
					"message":             "Your account must be verified by admin before adding products",
					"verification_status": nv.Status,
				},
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add product")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product added successfully", "product": p})
}

// List is the public catalog: products of approved shops only.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load products")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Compare feeds the price-comparison page.
func (h *Handler) Compare(c *gin.Context) {
	rows, err := h.service.Compare(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load price comparisons")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Mine lists the authenticated shopkeeper's own products.
func (h *Handler) Mine(c *gin.Context) {
	shopkeeperID := c.GetInt64("user_id")
	rows, err := h.service.ListByShopkeeper(c.Request.Context(), shopkeeperID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load products")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	d, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load product")
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	in, ok := h.parseForm(c, false)
	if !ok {
		return
	}

	shopkeeperID := c.GetInt64("user_id")
	p, err := h.service.Update(c.Request.Context(), id, shopkeeperID, UpdateInput(*in))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Product belongs to another shopkeeper")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update product")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product updated successfully", "product": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	shopkeeperID := c.GetInt64("user_id")
	if err := h.service.Delete(c.Request.Context(), id, shopkeeperID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete product")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// formInput is shared by Add and Update; the two inputs carry the same
// fields.
type formInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImagePath   string
}

func (h *Handler) parseForm(c *gin.Context, requireAll bool) (*formInput, bool) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")

	if requireAll && (name == "" || priceStr == "" || stockStr == "" || category == "") {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing fields")
		return nil, false
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid price")
		return nil, false
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil || stock < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stock")
		return nil, false
	}

	in := &formInput{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    category,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := h.saveImage(c, file)
		if saveErr != nil {
			logger.Log.Error().Err(saveErr).Msg("failed to store product image")
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store image")
			return nil, false
		}
		in.ImagePath = path
	}

	return in, true
}

func (h *Handler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
