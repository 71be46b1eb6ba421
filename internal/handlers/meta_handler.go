package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-records/internal/models"
	"github.com/harentsoaR/clinic-records/internal/utils"
	"go.uber.org/zap"
)

type userTypeOption struct {
	Value models.UserType `json:"value"`
	Label string          `json:"label"`
}

// ListUserTypes returns the selectable employee types with localized labels.
func (h *Handler) ListUserTypes(c *gin.Context) {
	lang := utils.MatchLanguage(c.GetHeader("Accept-Language"))
	options := make([]userTypeOption, 0, len(models.UserTypes))
	for _, t := range models.UserTypes {
		options = append(options, userTypeOption{
			Value: t,
			Label: utils.Message(lang, utils.MessageKey("userType."+string(t))),
		})
	}
	utils.OK(c, gin.H{"userTypes": options})
}

// Health pings the store.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.Logger.Warn("health check failed", zap.Error(err))
		msg := utils.Message(utils.MatchLanguage(c.GetHeader("Accept-Language")), utils.MsgUnavailable)
		utils.Respond(c, http.StatusServiceUnavailable, false, nil, &msg)
		return
	}
	utils.OK(c, gin.H{"status": "ok"})
}
