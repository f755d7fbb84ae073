package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"admin-backend/middleware"
	"admin-backend/services"
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Helper: ดึง :id แบบตัวเลขจาก path
// ---------------------------
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", utils.T(middleware.Locale(c), utils.MsgInvalidID))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into dst. Type mismatches become field errors so
// `"grade": "abc"` reads the same as a failed range check.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	loc := middleware.Locale(c)
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		verr := &utils.ValidationError{}
		verr.Add(typeErr.Field, "must be a "+typeErr.Type.String())
		utils.JSONValidationError(c, http.StatusUnprocessableEntity, utils.T(loc, utils.MsgValidationFailed), verr)
	case errors.Is(err, io.EOF):
		utils.JSONError(c, http.StatusBadRequest, "error.emptyBody", utils.T(loc, utils.MsgInvalidPayload))
	default:
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", utils.T(loc, utils.MsgInvalidPayload))
	}
	return false
}

// respondServiceError maps the service error taxonomy onto HTTP.
func respondServiceError(c *gin.Context, err error, notFoundKey string) {
	loc := middleware.Locale(c)

	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONValidationError(c, http.StatusUnprocessableEntity, utils.T(loc, utils.MsgValidationFailed), verr)
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", utils.T(loc, notFoundKey))
	case errors.Is(err, services.ErrIntegrity):
		log.Printf("⚠️  integrity error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusConflict, "error.integrity", utils.T(loc, utils.MsgIntegrity))
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", utils.T(loc, utils.MsgInternal))
	}
}

// backURL is where a "redirect back" lands: the Referer path when it has one,
// otherwise fallback.
func backURL(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
