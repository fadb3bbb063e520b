package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/calendar-booking/internal/config"
	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/dto"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
	"github.com/BruksfildServices01/calendar-booking/internal/httpresp"
	"github.com/BruksfildServices01/calendar-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/calendar-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/validators"
)

type AdminHandler struct {
	config *config.Config
	seed   *ucBooking.InitTimeslots
	log    *zap.Logger
}

func NewAdminHandler(
	cfg *config.Config,
	seed *ucBooking.InitTimeslots,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{config: cfg, seed: seed, log: log}
}

// --------- Handlers ---------

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if h.config.AdminPasswordHash == "" {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.config.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.generateToken(req.Username)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token")
		return
	}

	httpresp.OK(c, dto.LoginResponse{Success: true, Token: token})
}

// InitTimeslots seeds the recurring timeslot events. Partial progress is
// reported on failure.
func (h *AdminHandler) InitTimeslots(c *gin.Context) {
	anchor, err := validators.ParseAnchor(c.Query("anchor"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	created, err := h.seed.Execute(c.Request.Context(), middleware.AuthFrom(c), anchor)
	if err != nil {
		var te *booking.TransportError
		if errors.As(err, &te) {
			h.log.Error("timeslot seeding stopped",
				zap.Int("created", created),
				zap.String("op", te.Op),
				zap.Error(te.Err),
			)
			c.JSON(http.StatusBadGateway, gin.H{
				"success":    false,
				"error_code": "calendar_unavailable",
				"message":    msgCalendarUnavailable,
				"created":    created,
			})
			return
		}
		writeError(c, h.log, err)
		return
	}

	h.log.Info("timeslots seeded",
		zap.Int("created", created),
		zap.String("admin", c.GetString(middleware.ContextAdmin)),
	)
	httpresp.Created(c, dto.InitTimeslotsResponse{Success: true, Created: created})
}

// --------- JWT ---------

func (h *AdminHandler) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": middleware.RoleAdmin,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
