package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkt-app/linkt-api/internal/api/handler/v1/response"
	"github.com/linkt-app/linkt-api/internal/api/middleware"
	"github.com/linkt-app/linkt-api/internal/domain"
	"github.com/linkt-app/linkt-api/internal/service"
)

type fakeUserService struct {
	users map[uint]domain.User
}

func (f *fakeUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserService) GetPendingOrganizers(_ context.Context) ([]domain.Organizer, error) {
	return nil, nil
}

func (f *fakeUserService) ApproveOrganizer(_ context.Context, _ uint) error {
	return nil
}

type fakeTicketService struct {
	validateResult domain.ScanResult
	validateErr    error
	statsResult    domain.ScanStats
	statsErr       error
	purchaseResult domain.Ticket
	purchaseErr    error

	gotEventID uint
	gotQRCode  string
	gotScanner uint
}

func (f *fakeTicketService) Purchase(_ context.Context, userID, eventID uint) (domain.Ticket, error) {
	return f.purchaseResult, f.purchaseErr
}

func (f *fakeTicketService) GetTicket(_ context.Context, id uint) (domain.Ticket, error) {
	return domain.Ticket{}, service.ErrTicketNotFound
}

func (f *fakeTicketService) GetUserTickets(_ context.Context, _ uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketService) Validate(_ context.Context, eventID uint, qrCode string, scannerID uint) (domain.ScanResult, error) {
	f.gotEventID = eventID
	f.gotQRCode = qrCode
	f.gotScanner = scannerID

	return f.validateResult, f.validateErr
}

func (f *fakeTicketService) GetScanStats(_ context.Context, eventID, requesterID uint) (domain.ScanStats, error) {
	return f.statsResult, f.statsErr
}

// authAs mimics the JWT middleware by stashing the user id in the context.
func authAs(userID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserID, userID)
		ctx.Next()
	}
}

func newTicketTestRouter(svc *fakeTicketService, uSvc *fakeUserService, callerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTicketHandler(svc, uSvc)

	router := gin.New()
	group := router.Group("/api", authAs(callerID))
	group.POST("/tickets", handler.HandlePurchaseTicket)
	group.POST("/tickets/events/:eventID/validate", handler.HandleValidateTicket)
	group.GET("/tickets/events/:eventID/scan-stats", handler.HandleGetScanStats)

	return router
}

func organizerUsers() *fakeUserService {
	return &fakeUserService{users: map[uint]domain.User{
		10:  {UserID: 10, FirstName: "Olivia", LastName: "Martin", UserType: domain.UserTypeOrganizer},
		100: {UserID: 100, FirstName: "Sam", LastName: "Chen", UserType: domain.UserTypeStudent},
	}}
}

func TestHandleValidateTicket_Success(t *testing.T) {
	scannedAt := "2025-05-12T18:30:00Z"
	svc := &fakeTicketService{
		validateResult: domain.ScanResult{
			Valid:   true,
			Status:  domain.ScanStatusSuccess,
			Message: "Ticket successfully scanned for Sam Chen",
			Ticket: &domain.Ticket{
				TicketID: 7,
				Student:  domain.User{FirstName: "Sam", LastName: "Chen", Email: "sam@example.edu"},
				Event:    domain.Event{Title: "Spring Gala", StartDateTime: "2025-05-12T18:00:00Z"},
			},
			ScannedAt: &scannedAt,
			ScannedBy: "Olivia Martin",
		},
	}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	body := bytes.NewBufferString(`{"qrCode":"LINKT-1-7"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/1/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got response.ScanResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, "SUCCESS", got.Status)
	require.NotNil(t, got.TicketData)
	assert.Equal(t, uint(7), got.TicketData.TicketID)
	assert.Equal(t, "Sam Chen", got.TicketData.StudentName)
	assert.Equal(t, "Spring Gala", got.TicketData.EventName)

	assert.Equal(t, uint(1), svc.gotEventID)
	assert.Equal(t, "LINKT-1-7", svc.gotQRCode)
	assert.Equal(t, uint(10), svc.gotScanner)
}

func TestHandleValidateTicket_InvalidCodeIs200(t *testing.T) {
	svc := &fakeTicketService{
		validateResult: domain.ScanResult{
			Valid:   false,
			Status:  domain.ScanStatusInvalid,
			Message: "Invalid ticket code",
		},
	}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	body := bytes.NewBufferString(`{"qrCode":"garbage"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/1/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got response.ScanResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, "INVALID", got.Status)
	assert.Nil(t, got.TicketData)
}

func TestHandleValidateTicket_StudentForbidden(t *testing.T) {
	svc := &fakeTicketService{}
	router := newTicketTestRouter(svc, organizerUsers(), 100)

	body := bytes.NewBufferString(`{"qrCode":"LINKT-1-7"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/1/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Empty(t, svc.gotQRCode)
}

func TestHandleValidateTicket_NotOwnerForbidden(t *testing.T) {
	svc := &fakeTicketService{validateErr: service.ErrNotEventOwner}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	body := bytes.NewBufferString(`{"qrCode":"LINKT-1-7"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/1/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleValidateTicket_EventMissing(t *testing.T) {
	svc := &fakeTicketService{validateErr: service.ErrEventNotFound}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	body := bytes.NewBufferString(`{"qrCode":"LINKT-999-7"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/999/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleValidateTicket_MissingQRCode(t *testing.T) {
	svc := &fakeTicketService{}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/events/1/validate", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleGetScanStats(t *testing.T) {
	svc := &fakeTicketService{
		statsResult: domain.ScanStats{
			EventID:        1,
			EventName:      "Spring Gala",
			TotalTickets:   3,
			ScannedCount:   1,
			RemainingCount: 2,
		},
	}
	router := newTicketTestRouter(svc, organizerUsers(), 10)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/events/1/scan-stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got response.ScanStatsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Spring Gala", got.EventName)
	assert.Equal(t, 3, got.TotalTickets)
	assert.Equal(t, 1, got.ScannedCount)
	assert.Equal(t, 2, got.RemainingCount)
}

func TestHandlePurchaseTicket_EventMissing(t *testing.T) {
	svc := &fakeTicketService{purchaseErr: service.ErrEventNotFound}
	router := newTicketTestRouter(svc, organizerUsers(), 100)

	body := bytes.NewBufferString(`{"eventId":999}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandlePurchaseTicket(t *testing.T) {
	svc := &fakeTicketService{
		purchaseResult: domain.Ticket{TicketID: 7, QRCode: "LINKT-1-7"},
	}
	router := newTicketTestRouter(svc, organizerUsers(), 100)

	body := bytes.NewBufferString(`{"eventId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var got domain.Ticket
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "LINKT-1-7", got.QRCode)
}
