package gymsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchangeBuildsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/exchange":
			var req ExchangeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "tok", req.Token)
			require.Equal(t, PortalMember, req.Type)
			_ = json.NewEncoder(w).Encode(SessionResponse{
				AccessToken: "jwt",
				TokenType:   "Bearer",
				ExpiresIn:   3600,
				User:        SessionUser{ID: "m1", Type: PortalMember},
			})
		case "/v1/member/notifications":
			require.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]Notification{{ID: "n1", Title: "hi"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	s, err := c.Exchange(context.Background(), "tok", PortalMember, "")
	require.NoError(t, err)
	require.False(t, s.IsAdmin())
	require.Equal(t, "jwt", s.AccessToken())

	list, err := s.MyNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "n1", list[0].ID)
}

func TestAPIErrorDecoding(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"insufficient_stock","error_description":"Insufficient stock for Whey. Available: 2"}`))
	}))
	defer srv.Close()

	s := NewClient(srv.URL).SessionFromToken("jwt")
	_, err := s.PlaceOrder(context.Background(), OrderItemRequest{ProductID: "p1", Quantity: 3})
	require.Error(t, err)
	require.True(t, IsCode(err, ErrorCodeInsufficientStock))
	require.Equal(t, http.StatusConflict, StatusCode(err))
	require.Contains(t, err.Error(), "Available: 2")
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).RequestLink(context.Background(), "a@b.c", PortalAdmin)
	require.Error(t, err)
	require.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestAttachmentName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "report_1.csv", attachmentName(`attachment; filename="report_1.csv"`))
	require.Empty(t, attachmentName(""))
}
