package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"afterReach/internal/handlers"
	"afterReach/internal/models"
	"afterReach/internal/seed"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (http.Handler, *service.State) {
	t.Helper()
	now := time.Date(2023, time.November, 10, 9, 0, 0, 0, time.UTC)
	st := service.NewState(service.Deps{Clock: func() time.Time { return now }})

	data, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, data.Apply(context.Background(), st))

	r := chi.NewRouter()
	handlers.Register(r, st)
	return r, st
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func field[T any](t *testing.T, rr *httptest.ResponseRecorder, key string) T {
	t.Helper()
	var v T
	raw, ok := decode(t, rr)[key]
	require.Truef(t, ok, "response has no %q: %s", key, rr.Body.String())
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	h, _ := newRouter(t)
	rr := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", field[string](t, rr, "status"))
}

func TestDashboard(t *testing.T) {
	h, _ := newRouter(t)
	rr := do(t, h, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	progress := field[service.Progress](t, rr, "progress")
	assert.Equal(t, 12, progress.Percentage)
	assert.Len(t, progress.Next, 3)
	assert.Equal(t, "Alex", field[models.UserProfile](t, rr, "profile").FirstName)
}

func TestChecklistHandlers(t *testing.T) {
	h, _ := newRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       any
		wantStatus int
		wantError  string
	}{
		{name: "list", method: http.MethodGet, target: "/checklist", wantStatus: http.StatusOK},
		{name: "get", method: http.MethodGet, target: "/checklist/1", wantStatus: http.StatusOK},
		{name: "get missing", method: http.MethodGet, target: "/checklist/404", wantStatus: http.StatusNotFound, wantError: service.CodeNotFound},
		{name: "create", method: http.MethodPost, target: "/checklist", body: map[string]any{"title": "Close utilities"}, wantStatus: http.StatusCreated},
		{name: "create blank", method: http.MethodPost, target: "/checklist", body: map[string]any{"title": " "}, wantStatus: http.StatusBadRequest, wantError: service.CodeValidation},
		{name: "update", method: http.MethodPut, target: "/checklist/4", body: map[string]any{"dueDate": "2023-11-30"}, wantStatus: http.StatusOK},
		{name: "toggle", method: http.MethodPost, target: "/checklist/4/toggle", wantStatus: http.StatusOK},
		{name: "confirm nothing", method: http.MethodPost, target: "/checklist/pending-delete/confirm", wantStatus: http.StatusConflict, wantError: service.CodeNoPendingDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, field[string](t, rr, "error"))
			}
		})
	}
}

func TestChecklist_UpdateKeepsAbsentFields(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodPut, "/checklist/1", map[string]any{"title": "Order Death Certificates"})
	require.Equal(t, http.StatusOK, rr.Code)

	task := field[models.LegalTask](t, rr, "task")
	assert.Equal(t, "Order Death Certificates", task.Title)
	assert.Equal(t, "2023-11-15", task.DueDate)
	assert.NotEmpty(t, task.Description)
}

func TestChecklist_SearchQuery(t *testing.T) {
	h, _ := newRouter(t)
	rr := do(t, h, http.MethodGet, "/checklist?q=notify", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, field[[]models.LegalTask](t, rr, "tasks"), 5)
}

func TestTwoPhaseDelete(t *testing.T) {
	h, st := newRouter(t)

	rr := do(t, h, http.MethodPost, "/family/1/select", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodPost, "/family/1/delete", nil)
	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 2, st.Family.Len(), "request alone deletes nothing")

	rr = do(t, h, http.MethodGet, "/family/pending-delete", nil)
	assert.Equal(t, "1", field[string](t, rr, "pendingDelete"))

	rr = do(t, h, http.MethodPost, "/family/pending-delete/cancel", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, h, http.MethodGet, "/family/pending-delete", nil)
	assert.Equal(t, "null", string(decode(t, rr)["pendingDelete"]))

	do(t, h, http.MethodPost, "/family/1/delete", nil)
	rr = do(t, h, http.MethodPost, "/family/pending-delete/confirm", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Sarah Doe", field[models.FamilyMember](t, rr, "deleted").FullName)
	assert.Equal(t, 1, st.Family.Len())

	rr = do(t, h, http.MethodGet, "/family/selected", nil)
	assert.Equal(t, "null", string(decode(t, rr)["member"]))

	rr = do(t, h, http.MethodPost, "/family/404/delete", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTasks_FilterAndDefaults(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodGet, "/tasks?category=Pet", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	tasks := field[[]models.PersonalTask](t, rr, "tasks")
	require.Len(t, tasks, 1)
	assert.Equal(t, "Find pet sitter for Buster", tasks[0].Title)

	rr = do(t, h, http.MethodPost, "/tasks", map[string]any{"title": "Call florist"})
	require.Equal(t, http.StatusCreated, rr.Code)
	task := field[models.PersonalTask](t, rr, "task")
	assert.Equal(t, "Unassigned", task.Assignee)
	assert.Equal(t, "Personal", task.Category)
	assert.Equal(t, "2023-11-10", task.Date)

	rr = do(t, h, http.MethodGet, "/tasks", nil)
	assert.Equal(t, "Call florist", field[[]models.PersonalTask](t, rr, "tasks")[0].Title)
}

func TestFamily_Skills(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodPost, "/family/2/skills", map[string]any{"value": "Cooking"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Home Repair", "Driving", "Cooking"}, field[models.FamilyMember](t, rr, "member").Skills)

	rr = do(t, h, http.MethodDelete, "/family/2/skills/0", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Driving", "Cooking"}, field[models.FamilyMember](t, rr, "member").Skills)

	rr = do(t, h, http.MethodDelete, "/family/2/skills/9", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = do(t, h, http.MethodDelete, "/family/2/skills/x", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProfessionals_ReviewAndRoles(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodPost, "/professionals/2/reviews", map[string]any{"rating": 3, "text": "Helpful."})
	require.Equal(t, http.StatusCreated, rr.Code)
	p := field[models.Professional](t, rr, "professional")
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 3, p.ReviewCount)
	assert.Equal(t, "Alex Doe", p.Reviews[0].Author)

	rr = do(t, h, http.MethodPost, "/professionals/2/reviews", map[string]any{"rating": 9, "text": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPut, "/roles/Elder%20Attorney", map[string]any{"name": "Probate Attorney"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/professionals?role=Probate%20Attorney", nil)
	list := field[[]models.Professional](t, rr, "professionals")
	require.Len(t, list, 1)
	assert.Equal(t, "Marcus Thorne", list[0].FullName)

	rr = do(t, h, http.MethodPut, "/roles/Probate%20Attorney", map[string]any{"name": "Estate Planner"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, service.CodeDuplicateName, field[string](t, rr, "error"))
}

func TestDocuments(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodGet, "/documents/counts", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]int{"Essential": 2, "Financial": 1, "Personal": 1}, field[map[string]int](t, rr, "counts"))

	rr = do(t, h, http.MethodPost, "/documents", map[string]any{"name": "Deed.pdf", "sizeBytes": 3145728, "category": "Financial"})
	require.Equal(t, http.StatusCreated, rr.Code)
	doc := field[models.DocumentItem](t, rr, "document")
	assert.Equal(t, "3.0 MB", doc.Size)

	rr = do(t, h, http.MethodGet, "/documents?category=Financial", nil)
	assert.Len(t, field[[]models.DocumentItem](t, rr, "documents"), 2)

	rr = do(t, h, http.MethodGet, "/documents/2/download", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "Last Will.pdf")
	assert.True(t, strings.HasPrefix(rr.Body.String(), "This is a placeholder content for the file: Last Will.pdf"))
}

func TestCalendar(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodGet, "/calendar/month", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var view struct {
		MonthName    string `json:"monthName"`
		DaysInMonth  int    `json:"daysInMonth"`
		FirstWeekday int    `json:"firstWeekday"`
		Days         []struct {
			Today  bool                   `json:"today"`
			Events []models.CalendarEvent `json:"events"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rr)["calendar"], &view))
	assert.Equal(t, "November", view.MonthName)
	assert.Equal(t, 30, view.DaysInMonth)
	assert.Equal(t, 3, view.FirstWeekday)
	assert.True(t, view.Days[9].Today)
	assert.Len(t, view.Days[9].Events, 2)

	rr = do(t, h, http.MethodGet, "/calendar/month?year=2023&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = do(t, h, http.MethodGet, "/calendar/month?year=2023", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPut, "/calendar/events/task-1", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, service.CodeReadOnlyEvent, field[string](t, rr, "error"))

	rr = do(t, h, http.MethodPost, "/calendar/events/task-1/delete", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = do(t, h, http.MethodPost, "/calendar/events", map[string]any{"title": "Call bank", "date": "2023-11-10", "time": "09:30", "type": "admin"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, h, http.MethodGet, "/calendar/events?merged=true", nil)
	assert.Len(t, field[[]models.CalendarEvent](t, rr, "events"), 9)
}

func TestCategories(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodPost, "/categories", map[string]any{"name": "Finance"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, []string{"Personal", "Household", "Pet", "Admin", "Finance"}, field[[]string](t, rr, "categories"))

	rr = do(t, h, http.MethodPost, "/categories", map[string]any{"name": "Pet"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, h, http.MethodDelete, "/categories/Finance", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, h, http.MethodDelete, "/categories/Finance", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProfile(t *testing.T) {
	h, _ := newRouter(t)

	rr := do(t, h, http.MethodPut, "/profile", map[string]any{"firstName": "Alex", "lastName": "Rivera", "email": "alex@example.com"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/profile", nil)
	assert.Equal(t, "Rivera", field[models.UserProfile](t, rr, "profile").LastName)

	rr = do(t, h, http.MethodPut, "/profile", map[string]any{"firstName": "Alex"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDecodeJSON_ContentType(t *testing.T) {
	h, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/checklist", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/checklist", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) History(ctx context.Context) []models.ChatMessage {
	args := m.Called(ctx)
	return args.Get(0).([]models.ChatMessage)
}

func (m *MockChatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(models.ChatMessage), args.Error(1)
}

func (m *MockChatService) Clear(ctx context.Context) []models.ChatMessage {
	args := m.Called(ctx)
	return args.Get(0).([]models.ChatMessage)
}

var _ handlers.ChatService = (*MockChatService)(nil)

func TestChatHandler(t *testing.T) {
	welcome := models.ChatMessage{ID: "w", Role: models.ChatRoleModel, Text: service.WelcomeMessage}
	reply := models.ChatMessage{ID: "m1", Role: models.ChatRoleModel, Text: "I'm here."}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*MockChatService)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]any{"text": "hello"},
			setupMock: func(m *MockChatService) {
				m.On("Send", mock.Anything, "hello").Return(reply, nil)
				m.On("History", mock.Anything).Return([]models.ChatMessage{welcome, reply})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty text",
			body: map[string]any{"text": ""},
			setupMock: func(m *MockChatService) {
				m.On("Send", mock.Anything, "").Return(models.ChatMessage{}, service.NewValidationError("text", "must not be empty"))
			},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := new(MockChatService)
			tt.setupMock(chat)

			r := chi.NewRouter()
			r.Route("/chat", handlers.NewChatHandler(chat).Routes)

			rr := do(t, r, http.MethodPost, "/chat/messages", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			chat.AssertExpectations(t)
		})
	}
}

func TestChatHandler_Clear(t *testing.T) {
	chat := new(MockChatService)
	chat.On("Clear", mock.Anything).Return([]models.ChatMessage{{ID: "w2", Text: service.WelcomeMessage}})

	r := chi.NewRouter()
	r.Route("/chat", handlers.NewChatHandler(chat).Routes)

	rr := do(t, r, http.MethodDelete, "/chat", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, field[[]models.ChatMessage](t, rr, "messages"), 1)
}
