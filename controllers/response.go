package controllers

import (
	"encoding/json"
	"errors"
	"html"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kendall-kelly/task-exchange-api/middleware"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondStoreError maps a store error onto an HTTP response.
// entity is the upper-case singular name used in error codes, e.g. "USER".
func respondStoreError(c *gin.Context, err error, entity, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, entity+"_NOT_FOUND", "No "+strings.ToLower(entity)+" with this id")
	case errors.Is(err, store.ErrDuplicateKey):
		respondError(c, http.StatusConflict, entity+"_EXISTS", "A "+strings.ToLower(entity)+" with this id already exists")
	case errors.Is(err, store.ErrForeignKeyViolation):
		respondError(c, http.StatusConflict, "INVALID_REFERENCE", "A referenced row does not exist")
	default:
		log.Printf("[%s] failed to %s %s: %v", middleware.GetRequestID(c), action, strings.ToLower(entity), err)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to "+action+" "+strings.ToLower(entity))
	}
}

// render writes payload as JSON, or as indented JSON inside <pre> for clients that ask for HTML
func render(c *gin.Context, payload any) {
	switch c.NegotiateFormat(binding.MIMEJSON, binding.MIMEHTML) {
	case binding.MIMEHTML:
		body, err := json.MarshalIndent(payload, "", "    ")
		if err != nil {
			respondError(c, http.StatusInternalServerError, "SERIALIZATION_ERROR", "Failed to serialize response")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<pre>"+html.EscapeString(string(body))+"</pre>"))
	default:
		c.JSON(http.StatusOK, payload)
	}
}

// parseID reads the :id path parameter, responding 400 when it is not a positive integer
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bindBody decodes the JSON request body into dst, responding 400 on failure
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondInvalidBody(c, err)
		return false
	}
	return true
}

// bindBodyWithoutID is bindBody with any "id" member dropped before decoding,
// so a body id of any JSON type never reaches dst
func bindBodyWithoutID(c *gin.Context, dst any) bool {
	var members map[string]json.RawMessage
	if err := c.ShouldBindJSON(&members); err != nil {
		respondInvalidBody(c, err)
		return false
	}
	delete(members, "id")

	payload, err := json.Marshal(members)
	if err == nil {
		err = json.Unmarshal(payload, dst)
	}
	if err != nil {
		respondInvalidBody(c, err)
		return false
	}
	return true
}

func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Request body must be a JSON object",
			"details": err.Error(),
		},
	})
}
