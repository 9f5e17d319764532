// File: handlers/teacher.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classcal/services/teacher"
	"classcal/utils"
)

// TeacherHandler exposes the read-only teacher allow-list.
type TeacherHandler struct {
	Directory teacher.TeacherDirectory
	Logger    *zap.Logger
}

func NewTeacherHandler(directory teacher.TeacherDirectory, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{Directory: directory, Logger: logger}
}

// ListTeachersHandler returns every teacher on the allow-list.
func (h *TeacherHandler) ListTeachersHandler(c *gin.Context) {
	teachers, degraded := h.Directory.FetchAll(c.Request.Context())

	resp := gin.H{"teachers": teachers}
	if degraded {
		resp["warning"] = degradedNotice
	}
	c.JSON(http.StatusOK, resp)
}

// GetTeacherByEmailHandler resolves a single allow-list entry, used by the
// sign-in flow to check eligibility.
func (h *TeacherHandler) GetTeacherByEmailHandler(c *gin.Context) {
	email := c.Param("email")

	found, err := h.Directory.FindByEmail(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "teacher not found", email)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": found})
}
