package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/request"
	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/response"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/httputil"
	"github.com/boardline/boardline-backend/internal/usecase/media"
)

type MediaHandler struct {
	mediaSvc      MediaService
	maxUploadSize int64
}

func NewMediaHandler(mediaSvc MediaService, maxUploadSize int64) *MediaHandler {
	return &MediaHandler{
		mediaSvc:      mediaSvc,
		maxUploadSize: maxUploadSize,
	}
}

// Upload accepts one source image as multipart form data plus optional
// crop_x/crop_y/crop_width/crop_height and position fields.
func (h *MediaHandler) Upload(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	crop, err := parseCrop(c)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_CROP", err.Error())
		return
	}

	var displayOrder *int
	if raw := c.PostForm("position"); raw != "" {
		pos, err := strconv.Atoi(raw)
		if err != nil || pos < 1 {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_POSITION", "position must be a positive integer")
			return
		}
		displayOrder = &pos
	}

	bundle, err := h.mediaSvc.Upload(c.Request.Context(), media.UploadInput{
		ProductID:    productID,
		File:         file,
		Filename:     header.Filename,
		Crop:         crop,
		DisplayOrder: displayOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
		case errors.Is(err, domain.ErrInvalidImage):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_IMAGE", "file is not a decodable image")
		case isTooLarge(err):
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.BundleFromEntity(bundle))
}

func (h *MediaHandler) List(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	var req request.ListBundlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var size *valueobject.ImageSize
	if req.Size != "" {
		s := valueobject.ImageSize(req.Size)
		size = &s
	}

	bundles, err := h.mediaSvc.ListBundles(c.Request.Context(), media.ListInput{
		ProductID:        productID,
		Size:             size,
		DisplayReadyOnly: req.DisplayReadyOnly,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.BundlesListResponse{Bundles: response.BundlesFromEntities(bundles)})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	bundleID, err := uuid.Parse(c.Param("bundle_id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid bundle id")
		return
	}

	if err := h.mediaSvc.DeleteBundle(c.Request.Context(), bundleID); err != nil {
		if errors.Is(err, domain.ErrBundleNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "bundle not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

func (h *MediaHandler) Reorder(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	var req request.ReorderBundlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	orders := make([]media.BundleOrder, 0, len(req.Orders))
	for _, o := range req.Orders {
		bundleID, err := uuid.Parse(o.BundleID)
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid bundle id")
			return
		}
		orders = append(orders, media.BundleOrder{BundleID: bundleID, DisplayOrder: o.DisplayOrder})
	}

	if err := h.mediaSvc.Reorder(c.Request.Context(), productID, orders); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
		case errors.Is(err, domain.ErrBundleNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "bundle not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.NoContent(c)
}

// isTooLarge reports whether err came from the MaxBytesReader cap,
// whether it surfaced during multipart parsing or later from the
// pipeline reading the file part.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// parseCrop reads the optional crop fields. All four must be present
// together; a partial crop is rejected.
func parseCrop(c *gin.Context) (*valueobject.CropRect, error) {
	raw := [4]string{
		c.PostForm("crop_x"),
		c.PostForm("crop_y"),
		c.PostForm("crop_width"),
		c.PostForm("crop_height"),
	}

	present := 0
	for _, v := range raw {
		if v != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present != len(raw) {
		return nil, errors.New("crop requires crop_x, crop_y, crop_width and crop_height")
	}

	var values [4]int
	for i, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errors.New("crop fields must be non-negative integers")
		}
		values[i] = n
	}
	if values[2] == 0 || values[3] == 0 {
		return nil, errors.New("crop dimensions must be positive")
	}

	return &valueobject.CropRect{
		Left:   values[0],
		Top:    values[1],
		Width:  values[2],
		Height: values[3],
	}, nil
}
