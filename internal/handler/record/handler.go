package record

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-api/internal/model"
	"github.com/jwalitptl/healthcare-api/internal/service/medical"
	"github.com/jwalitptl/healthcare-api/pkg/httputil"
)

type Handler struct {
	service medical.MedicalRecordService
}

func NewHandler(service medical.MedicalRecordService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the record endpoints. The list endpoint hangs off the
// patients group; create and delete live under /records.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients/:id/records", h.ListPatientRecords)

	records := r.Group("/records")
	{
		records.POST("", h.CreateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}
}

func (h *Handler) ListPatientRecords(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid patient ID"})
		return
	}

	result, err := h.service.ListPatientRecords(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithPatientRecords(c, result.PatientName, result.Records, len(result.Records))
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: err.Error()})
		return
	}

	r, err := h.service.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, r, "Medical record created successfully")
}

func (h *Handler) DeleteRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid record ID"})
		return
	}

	if err := h.service.DeleteRecord(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, nil, "Medical record deleted successfully")
}
