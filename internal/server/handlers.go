package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"agrivoice-go/internal/locale"
	"agrivoice-go/internal/pipeline"
	"agrivoice-go/internal/stats"
	"agrivoice-go/internal/store"
	"agrivoice-go/internal/transcription"
	"agrivoice-go/internal/types"
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// CompleteVoiceProcess runs the full voice-to-listing pipeline.
func (s *Server) CompleteVoiceProcess(c echo.Context) error {
	var req types.VoiceProcessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request body"})
	}

	res, err := s.orch.Run(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoInput),
			errors.Is(err, transcription.ErrBadAudio),
			errors.Is(err, transcription.ErrAudioTooSmall),
			errors.Is(err, transcription.ErrAudioTooLarge):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		var perr *pipeline.Error
		if errors.As(err, &perr) {
			s.log.WithRequest(c.Request()).WithField("stage", perr.Stage).WithField("error", perr.Err.Error()).Error("pipeline failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false, "error": "processing failed", "stage": perr.Stage,
			})
		}
		s.log.WithRequest(c.Request()).WithField("error", err.Error()).Error("pipeline failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "processing failed"})
	}
	return c.JSON(http.StatusOK, res)
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Password    string `json:"password"`
	Language    string `json:"language"`
	VillageCity string `json:"village_city"`
}

// Register creates a farmer profile. Mobile format is the only structurally
// enforced invariant.
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request body"})
	}
	if len(req.Name) < 2 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "name is required"})
	}
	if !mobileRe.MatchString(req.Mobile) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "mobile must be 10 digits starting with 6-9"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "password must be at least 6 characters"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "server error"})
	}

	farmer, err := s.store.RegisterFarmer(c.Request().Context(), types.FarmerProfile{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Language:     locale.Normalize(req.Language),
		VillageCity:  req.VillageCity,
		PasswordHash: string(hashed),
	})
	if err != nil {
		s.log.WithRequest(c.Request()).WithField("error", err.Error()).Error("farmer registration failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "registration failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "farmer registered successfully",
		"user":    farmer,
	})
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Login verifies the farmer's password and issues a short-lived token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request body"})
	}
	farmer, err := s.store.FindFarmerByMobile(c.Request().Context(), req.Mobile)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(farmer.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"farmer_id": farmer.ID,
		"mobile":    farmer.Mobile,
		"exp":       time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   signed,
		"user":    farmer,
	})
}

type checkStatusRequest struct {
	Mobile string `json:"mobile"`
}

// CheckStatus lists a farmer's products, newest first, with aggregate stats.
func (s *Server) CheckStatus(c echo.Context) error {
	var req checkStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request body"})
	}
	if req.Mobile == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "mobile is required"})
	}
	records, err := s.store.ListByMobile(c.Request().Context(), req.Mobile)
	if err != nil {
		s.log.WithRequest(c.Request()).WithField("error", err.Error()).Error("listing query failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "could not load products"})
	}
	if records == nil {
		records = []types.ListingRecord{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"products":   records,
		"statistics": stats.Aggregate(records),
	})
}

type statusUpdateRequest struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
}

// UpdateProductStatus sets a listing's status. Transitions are permissive;
// setting the same status twice is not an error.
func (s *Server) UpdateProductStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request body"})
	}
	status := types.ProductStatus(req.Status)
	if req.ProductID == "" || !types.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "product_id and a valid status are required"})
	}
	if err := s.store.UpdateStatus(c.Request().Context(), req.ProductID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "product not found"})
		}
		s.log.WithRequest(c.Request()).WithField("error", err.Error()).Error("status update failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "status update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "status updated successfully"})
}

// CheckUnsoldProducts finds pending listings older than a week and generates
// improvement suggestions for each in the background.
func (s *Server) CheckUnsoldProducts(c echo.Context) error {
	records, err := s.store.ListUnsold(c.Request().Context(), 7)
	if err != nil {
		s.log.WithRequest(c.Request()).WithField("error", err.Error()).Error("unsold query failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "could not load unsold products"})
	}

	for _, rec := range records {
		go func(rec types.ListingRecord) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			imp := s.suggester.Improve(ctx, rec.ProductInfo, rec.Transcript.Language)
			if err := s.store.UpdateSuggestions(ctx, rec.ID, imp); err != nil {
				s.log.WithField("product_id", rec.ID).WithField("error", err.Error()).Warn("improvement update failed")
			}
		}(rec)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "processing unsold products",
		"count":   len(records),
	})
}

// Health reports adapter availability without probing external services.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "healthy",
		"services": echo.Map{
			"ai":       echo.Map{"available": s.aiReady},
			"database": echo.Map{"connected": s.store.Available()},
		},
		"languages": locale.Supported(),
	})
}
