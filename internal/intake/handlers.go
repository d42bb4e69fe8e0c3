package intake

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/insuredesk/insure-backend/internal/httputil"
)

type Handler struct {
	Store ApplicationStore
}

func NewHandler(store ApplicationStore) *Handler {
	return &Handler{Store: store}
}

type applyRequest struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	VehicleType        string `json:"vehicle_type"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	RegistrationNumber string `json:"registration_number"`
}

type applyResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// Apply validates a submission and inserts one row. Repeated identical
// submissions create separate rows; there is no deduplication.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Phone == "" || req.Email == "" ||
		req.VehicleType == "" || req.Make == "" || req.Model == "" || req.Year == "" {
		httputil.Fail(w, http.StatusBadRequest, "All fields except registration number are required")
		return
	}

	app := Application{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		VehicleType: req.VehicleType,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
	}
	// An omitted or empty registration number is stored as NULL.
	if req.RegistrationNumber != "" {
		app.RegistrationNumber = &req.RegistrationNumber
	}

	if err := h.Store.Insert(&app); err != nil {
		log.Println("Failed to insert application:", err)
		httputil.Fail(w, http.StatusInternalServerError, "Database error")
		return
	}

	httputil.JSON(w, http.StatusOK, applyResponse{Success: true, ID: app.ID})
}
