package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializer"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLogLevel sets the level of the controllers logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// parseID reads the numeric id path parameter. Ids that are not positive
// integers cannot match any row, so the caller answers 404.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func respondNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, models.NewErrorResponse(message))
}

// respondReadError maps a failed read to 404 or 500
func respondReadError(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(ctx, notFoundMessage)
		return
	}
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Read failed")
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
}

// respondWriteError maps a failed mutation to 404 or 400
func respondWriteError(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(ctx, notFoundMessage)
		return
	}
	if verr, ok := services.IsValidationError(err); ok {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(verr.Errors...))
		return
	}
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Write failed")
	ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
}

// respondInvalidBody rejects a body that could not be decoded
func respondInvalidBody(ctx *gin.Context, err error) {
	log.WithError(err).Debug("Invalid request body")
	ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("invalid request body"))
}

// respondSerialized renders s through view
func respondSerialized(ctx *gin.Context, status int, s serializer.Serializable, view serializer.View) {
	body, err := serializer.Serialize(s, view)
	if err != nil {
		respondSerializeError(ctx, err)
		return
	}
	ctx.JSON(status, body)
}

func respondSerializeError(ctx *gin.Context, err error) {
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Serialization failed")
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
}
