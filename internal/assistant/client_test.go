package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unrot/unrot/internal/config"
	"github.com/unrot/unrot/internal/models"
)

func testClient(endpoint string) *Client {
	return NewClient(&config.Config{
		AssistantEndpoint: endpoint,
		AssistantModel:    "test-model",
		RequestTimeout:    2 * time.Second,
	}, zerolog.Nop())
}

func TestAdviceReturnsServerText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req["model"] != "test-model" {
			t.Errorf("expected model forwarded, got %v", req["model"])
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "Keep the streak alive."})
	}))
	defer srv.Close()

	got := testClient(srv.URL).Advice(context.Background(), WorkspaceStats{Points: 10, PendingTasks: 3, Habits: 2})
	if got != "Keep the streak alive." {
		t.Errorf("unexpected advice %q", got)
	}
}

func TestAdviceFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := testClient(srv.URL).Advice(context.Background(), WorkspaceStats{})
	if got != adviceFallback {
		t.Errorf("expected fallback advice, got %q", got)
	}
}

func TestAdviceFallsBackWithoutEndpoint(t *testing.T) {
	got := testClient("").Advice(context.Background(), WorkspaceStats{})
	if got != adviceFallback {
		t.Errorf("expected fallback advice, got %q", got)
	}
}

func TestChatFallsBackOnMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	got := testClient(srv.URL).Chat(context.Background(), "hello", nil)
	if got != chatFallback {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestProposeScheduleParsesProposals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"text": `[{"taskId":"t1","startTime":"09:00"},{"taskId":"t2","startTime":"14:00"}]`,
		})
	}))
	defer srv.Close()

	proposals, err := testClient(srv.URL).ProposeSchedule(context.Background(),
		[]PendingTask{{ID: "t1", Title: "A"}, {ID: "t2", Title: "B"}}, "deep work morning")
	if err != nil {
		t.Fatal(err)
	}
	if len(proposals) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(proposals))
	}
	if proposals[0].TaskID != "t1" || proposals[0].StartTime != "09:00" {
		t.Errorf("unexpected proposal %+v", proposals[0])
	}
}

func TestProposeScheduleStripsCodeFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"text": "```json\n[{\"taskId\":\"t1\",\"startTime\":\"08:00\"}]\n```",
		})
	}))
	defer srv.Close()

	proposals, err := testClient(srv.URL).ProposeSchedule(context.Background(),
		[]PendingTask{{ID: "t1", Title: "A"}}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(proposals) != 1 || proposals[0].StartTime != "08:00" {
		t.Errorf("unexpected proposals %+v", proposals)
	}
}

func TestProposeScheduleErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ProposeSchedule(context.Background(),
		[]PendingTask{{ID: "t1"}}, "")
	if err == nil {
		t.Error("expected an error so callers can fall back to the local scheduler")
	}
}

func TestProposeScheduleEmptyTaskList(t *testing.T) {
	proposals, err := testClient("http://unused").ProposeSchedule(context.Background(), nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if proposals != nil {
		t.Errorf("expected no proposals for no tasks, got %+v", proposals)
	}
}

func TestFilterProposals(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Title: "A"},
		{ID: "t2", Title: "B"},
	}
	proposals := []models.SlotProposal{
		{TaskID: "t1", StartTime: "09:00"},  // valid
		{TaskID: "ghost", StartTime: "10:00"}, // unknown id
		{TaskID: "t2", StartTime: "09:30"},  // not a whole hour
		{TaskID: "t2", StartTime: "06:00"},  // before window
		{TaskID: "t2", StartTime: "22:00"},  // after window
		{TaskID: "t2", StartTime: "21:00"},  // window edge, valid
	}

	got := FilterProposals(proposals, tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving proposals, got %d: %+v", len(got), got)
	}
	if got[0].TaskID != "t1" || got[1].StartTime != "21:00" {
		t.Errorf("unexpected filtered set %+v", got)
	}
}
