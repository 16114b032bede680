package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	appconfig "github.com/streetware/gateway/config"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/validators"
	"github.com/streetware/gateway/views"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetProducts serves the storefront listing: the full catalog run through the
// search/size/color/price filters and the optional sort, plus the facet
// values for the filter dropdowns.
func GetProducts(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products, err := backend.GetProducts()
		if err != nil {
			respondWithError(ctx, http.StatusBadGateway, "Unable to fetch products", err)
			return
		}

		filters := views.ProductFilters{
			Search:     ctx.Query("search"),
			Size:       ctx.Query("size"),
			Color:      ctx.Query("color"),
			PriceRange: ctx.Query("price_range"),
			Sort:       ctx.Query("sort"),
		}

		filtered := filters.Apply(products)
		ctx.JSON(http.StatusOK, gin.H{
			"products": filtered,
			"total":    len(filtered),
			"facets": gin.H{
				"sizes":  views.Sizes(products),
				"colors": views.Colors(products),
			},
		})
	}
}

func GetProduct(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		product, err := backend.GetProductByID(productID)
		if err != nil {
			sendBackendError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"product":         product,
			"effective_price": product.EffectivePrice(),
			"price_display":   views.FormatPrice(product.EffectivePrice()),
		})
	}
}

// adminToken returns the caller's token; the admin gate already ran, so the
// session is present.
func adminToken(ctx *gin.Context) string {
	session, _ := middlewares.SessionFromContext(ctx)
	return session.Token
}

// CreateProduct validates the admin form field-by-field before forwarding.
// Backend failures surface as a single generic submit error, not mapped to
// individual fields.
func CreateProduct(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var form validators.ProductForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if errs := form.Validate(); len(errs) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		product, err := backend.CreateProduct(adminToken(ctx), form.Data())
		if err != nil {
			log.Println("Error saving product:", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"errors": gin.H{"submit": "Failed to save product. Please try again."}})
			return
		}

		ctx.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully!",
			"product": product,
		})
	}
}

func UpdateProduct(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		var form validators.ProductForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if errs := form.Validate(); len(errs) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		product, err := backend.UpdateProduct(adminToken(ctx), productID, form.Data())
		if err != nil {
			log.Println("Error saving product:", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"errors": gin.H{"submit": "Failed to save product. Please try again."}})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully!",
			"product": product,
		})
	}
}

func DeleteProduct(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		if err := backend.DeleteProduct(adminToken(ctx), productID); err != nil {
			log.Println("Error deleting product:", err)
			sendBackendError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
	}
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages pushes admin-form images to S3 and returns their public
// URLs for use as image_url values.
func UploadProductImages(cfg *appconfig.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		form, err := ctx.MultipartForm()
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		var uploadedUrls []string
		var failedUploads []string

		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			// Unique filename to prevent overwrites
			uniqueFilename := fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), file.Filename)

			result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
				Bucket:      aws.String(cfg.ImageBucket),
				Key:         aws.String(uniqueFilename),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			uploadedUrls = append(uploadedUrls, result.Location)
		}

		response := gin.H{
			"message": "Files processed",
			"urls":    uploadedUrls,
		}
		if len(failedUploads) > 0 {
			response["failed"] = failedUploads
		}

		ctx.JSON(http.StatusOK, response)
	}
}
