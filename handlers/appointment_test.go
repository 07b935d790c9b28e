package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"medagenda/models"
	"medagenda/services/scheduling"
)

// stubSchedulingService records what the handler hands to the service.
// Methods the test never hits fall through to the nil embedded interface.
type stubSchedulingService struct {
	scheduling.SchedulingService
	gotID, gotStatus         string
	gotActorID, gotActorRole string
}

func (s *stubSchedulingService) UpdateAppointmentStatus(_ context.Context, id, status, actorID, actorRole string) (*models.Appointment, error) {
	s.gotID, s.gotStatus = id, status
	s.gotActorID, s.gotActorRole = actorID, actorRole
	return &models.Appointment{ID: id, Status: status}, nil
}

func TestUpdateAppointmentStatusHandlerPassesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubSchedulingService{}
	h := NewSchedulingHandler(stub)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "a1"}}
	c.Set("userID", "pat1")
	c.Set("role", "patient")
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/appointments/a1/status",
		bytes.NewBufferString(`{"status":"cancelled"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpdateAppointmentStatusHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", stub.gotID)
	assert.Equal(t, "cancelled", stub.gotStatus)
	assert.Equal(t, "pat1", stub.gotActorID)
	assert.Equal(t, "patient", stub.gotActorRole)
}
