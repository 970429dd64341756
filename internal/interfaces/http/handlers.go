package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parthdesai/billflow/internal/application/port"
	"github.com/parthdesai/billflow/internal/application/service"
	"github.com/parthdesai/billflow/internal/domain/document"
	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/internal/domain/workflow"
)

// Context keys set by the auth middleware.
const (
	contextKeyUserID = "user_id"
	contextKeyToken  = "session_token"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	authService     service.AuthService
	profileService  service.ProfileService
	documentService service.DocumentService
	summaryService  service.SummaryService
	exporter        port.DocumentExporter
	spreadsheet     port.SpreadsheetExporter
	logger          Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	authService service.AuthService,
	profileService service.ProfileService,
	documentService service.DocumentService,
	summaryService service.SummaryService,
	exporter port.DocumentExporter,
	spreadsheet port.SpreadsheetExporter,
	logger Logger,
) *Handlers {
	return &Handlers{
		authService:     authService,
		profileService:  profileService,
		documentService: documentService,
		summaryService:  summaryService,
		exporter:        exporter,
		spreadsheet:     spreadsheet,
		logger:          logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// SignUpRequest represents the account registration payload
type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	GSTIN    string `json:"gstin"`
}

// SignInRequest represents the sign-in payload
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents an issued session in API responses
type SessionResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	ExpiresAt string `json:"expires_at"`
}

// UpdateProfileRequest represents the business profile edit payload
type UpdateProfileRequest struct {
	LegalName         string `json:"legal_name"`
	RegistrationState string `json:"registration_state"`
	GSTIN             string `json:"gstin"`
	PAN               string `json:"pan"`
	BankDetails       string `json:"bank_details"`
	InvoicePrefix     string `json:"invoice_prefix"`
}

// ExportRequest selects the rendering format for a single document
type ExportRequest struct {
	Format string `json:"format" binding:"required"` // "pdf" or "png"
}

// ExportResponse carries the path of a written export file
type ExportResponse struct {
	Path string `json:"path"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// SignUp handles POST /api/auth/signup
func (h *Handlers) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password, req.GSTIN)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, Response{Success: false, Error: err.Error()})
			return
		}
		h.logger.Error("Sign-up failed", "error", err)
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    user,
	})
}

// SignIn handles POST /api/auth/signin
func (h *Handlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, Response{Success: false, Error: err.Error()})
			return
		}
		h.logger.Error("Sign-in failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: SessionResponse{
			Token:     session.Token,
			UserID:    session.UserID,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
	})
}

// SignOut handles POST /api/auth/signout
func (h *Handlers) SignOut(c *gin.Context) {
	token := c.GetString(contextKeyToken)
	if err := h.authService.SignOut(c.Request.Context(), token); err != nil {
		h.logger.Error("Sign-out failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// GetProfile handles GET /api/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	profile, err := h.profileService.Get(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err, "failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    profile,
	})
}

// UpdateProfile handles PUT /api/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	profile := &entity.BusinessProfile{
		OwnerID:           ownerID,
		LegalName:         req.LegalName,
		RegistrationState: req.RegistrationState,
		GSTIN:             req.GSTIN,
		PAN:               req.PAN,
		BankDetails:       req.BankDetails,
		InvoicePrefix:     req.InvoicePrefix,
	}
	if err := h.profileService.Update(c.Request.Context(), profile); err != nil {
		h.respondError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    profile,
	})
}

// ListDocuments handles GET /api/documents?kind=invoice|purchase_bill
func (h *Handlers) ListDocuments(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	kind, ok := parseKind(c.DefaultQuery("kind", string(entity.KindInvoice)))
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid document kind"})
		return
	}

	docs, err := h.documentService.List(c.Request.Context(), ownerID, kind)
	if err != nil {
		h.respondError(c, err, "failed to list documents")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    docs,
	})
}

// CreateDocument handles POST /api/documents
func (h *Handlers) CreateDocument(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	var in document.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}
	if _, ok := parseKind(string(in.Kind)); !ok {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid document kind"})
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		h.respondError(c, err, "failed to create document")
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    doc,
	})
}

// GetDocument handles GET /api/documents/:id
func (h *Handlers) GetDocument(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	doc, err := h.documentService.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    doc,
	})
}

// UpdateDocument handles PUT /api/documents/:id
func (h *Handlers) UpdateDocument(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	var in document.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), ownerID, c.Param("id"), in)
	if err != nil {
		h.respondError(c, err, "failed to update document")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    doc,
	})
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *Handlers) DeleteDocument(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	if err := h.documentService.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete document")
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

// TogglePaid handles POST /api/documents/:id/toggle-paid
func (h *Handlers) TogglePaid(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	doc, err := h.documentService.TogglePaid(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to change status")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    doc,
	})
}

// MarkOverdue handles POST /api/documents/:id/overdue
func (h *Handlers) MarkOverdue(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	doc, err := h.documentService.MarkOverdue(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to change status")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    doc,
	})
}

// ExportDocument handles POST /api/documents/:id/export
func (h *Handlers) ExportDocument(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	doc, err := h.documentService.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to retrieve document")
		return
	}
	profile, err := h.profileService.Get(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err, "failed to retrieve profile")
		return
	}

	var path string
	switch req.Format {
	case "pdf":
		path, err = h.exporter.ExportPDF(c.Request.Context(), profile, doc)
	case "png":
		path, err = h.exporter.ExportPNG(c.Request.Context(), profile, doc)
	default:
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "unsupported export format"})
		return
	}
	if err != nil {
		h.logger.Error("Export failed", "document_id", doc.ID, "format", req.Format, "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "export failed"})
		return
	}

	h.logger.Info("Document exported", "document_id", doc.ID, "format", req.Format, "path", path)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    ExportResponse{Path: path},
	})
}

// ExportSheet handles POST /api/documents/export-sheet?kind=invoice|purchase_bill
func (h *Handlers) ExportSheet(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	kind, ok := parseKind(c.DefaultQuery("kind", string(entity.KindInvoice)))
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid document kind"})
		return
	}

	docs, err := h.documentService.List(c.Request.Context(), ownerID, kind)
	if err != nil {
		h.respondError(c, err, "failed to list documents")
		return
	}

	sheetName := "Invoices"
	if kind == entity.KindPurchaseBill {
		sheetName = "Purchase Bills"
	}
	path, err := h.spreadsheet.ExportSheet(c.Request.Context(), sheetName, docs)
	if err != nil {
		h.logger.Error("Sheet export failed", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "export failed"})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    ExportResponse{Path: path},
	})
}

// GetSummary handles GET /api/summary
func (h *Handlers) GetSummary(c *gin.Context) {
	ownerID := c.GetString(contextKeyUserID)

	summary, err := h.summaryService.Summarize(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err, "failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// respondError maps service-layer errors onto HTTP statuses.
func (h *Handlers) respondError(c *gin.Context, err error, fallback string) {
	var verrs document.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "validation failed",
			Fields:  verrs,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "record not found"})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusConflict, Response{Success: false, Error: err.Error()})
	default:
		h.logger.Error(fallback, "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

func parseKind(raw string) (entity.DocumentKind, bool) {
	switch entity.DocumentKind(raw) {
	case entity.KindInvoice:
		return entity.KindInvoice, true
	case entity.KindPurchaseBill:
		return entity.KindPurchaseBill, true
	default:
		return "", false
	}
}
